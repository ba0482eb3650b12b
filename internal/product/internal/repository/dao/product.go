// Copyright 2024 camellia-mall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedAttrs 同一SPU下销售属性组合已存在
	ErrDuplicatedAttrs = errors.New("销售属性组合冲突")
)

const uniqueIndexConflictErrNo uint16 = 1062

type ProductDAO interface {
	SaveSPU(ctx context.Context, spu SPU) (int64, error)
	FindSPUByID(ctx context.Context, id int64) (SPU, error)
	FindSPUBySN(ctx context.Context, sn string) (SPU, error)
	FindSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]SPU, error)
	CountSPUs(ctx context.Context, categoryID int64) (int64, error)
	SaveSKU(ctx context.Context, sku SKU) (int64, error)
	FindSKUBySN(ctx context.Context, sn string) (SKU, error)
	FindSKUsBySPUID(ctx context.Context, spuID int64) ([]SKU, error)
	SaveCategory(ctx context.Context, c Category) (int64, error)
	FindCategories(ctx context.Context) ([]Category, error)
	SaveAttribute(ctx context.Context, a Attribute) (int64, error)
	SaveAttributeValue(ctx context.Context, v AttributeValue) (int64, error)
	FindAttributes(ctx context.Context) ([]Attribute, error)
	FindAttributeValues(ctx context.Context, attributeIDs []int64) ([]AttributeValue, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) SaveSPU(ctx context.Context, spu SPU) (int64, error) {
	now := time.Now().UnixMilli()
	spu.Utime = now
	spu.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"category_id", "name", "description", "price", "kind",
			"digital_file_url", "image", "status", "utime"}),
	}).Create(&spu).Error
	return spu.Id, err
}

func (d *ProductGORMDAO) FindSPUByID(ctx context.Context, id int64) (SPU, error) {
	var res SPU
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindSPUBySN(ctx context.Context, sn string) (SPU, error) {
	var res SPU
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]SPU, error) {
	var res []SPU
	query := d.db.WithContext(ctx).Where("status = ?", 2)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("utime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountSPUs(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&SPU{}).Where("status = ?", 2)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) SaveSKU(ctx context.Context, sku SKU) (int64, error) {
	now := time.Now().UnixMilli()
	sku.Utime = now
	sku.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "price", "stock", "attrs",
			"attrs_hash", "image", "status", "utime"}),
	}).Create(&sku).Error
	if me := (*mysql.MySQLError)(nil); errors.As(err, &me) && me.Number == uniqueIndexConflictErrNo {
		return 0, errors.Wrapf(ErrDuplicatedAttrs, "spu_id: %d, attrs_hash: %s", sku.SPUID, sku.AttrsHash)
	}
	return sku.Id, err
}

func (d *ProductGORMDAO) FindSKUBySN(ctx context.Context, sn string) (SKU, error) {
	var res SKU
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindSKUsBySPUID(ctx context.Context, spuID int64) ([]SKU, error) {
	var res []SKU
	err := d.db.WithContext(ctx).Where("spu_id = ?", spuID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) SaveCategory(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	c.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "sort", "utime"}),
	}).Create(&c).Error
	return c.Id, err
}

func (d *ProductGORMDAO) FindCategories(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Order("sort ASC, id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) SaveAttribute(ctx context.Context, a Attribute) (int64, error) {
	now := time.Now().UnixMilli()
	a.Utime = now
	a.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "utime"}),
	}).Create(&a).Error
	return a.Id, err
}

func (d *ProductGORMDAO) SaveAttributeValue(ctx context.Context, v AttributeValue) (int64, error) {
	now := time.Now().UnixMilli()
	v.Utime = now
	v.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"value", "utime"}),
	}).Create(&v).Error
	return v.Id, err
}

func (d *ProductGORMDAO) FindAttributes(ctx context.Context) ([]Attribute, error) {
	var res []Attribute
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindAttributeValues(ctx context.Context, attributeIDs []int64) ([]AttributeValue, error) {
	var res []AttributeValue
	err := d.db.WithContext(ctx).Where("attribute_id IN ?", attributeIDs).Order("id ASC").Find(&res).Error
	return res, err
}

type SPU struct {
	Id          int64          `gorm:"primaryKey,autoIncrement;comment:商品SPU自增ID"`
	SN          string         `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_product_spu_sn;comment:商品SPU序列号"`
	CategoryID  int64          `gorm:"column:category_id;index:idx_category_id;comment:商品类目ID"`
	Name        string         `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string         `gorm:"not null;comment:商品描述"`
	Price       int64          `gorm:"not null;comment:基础价格, 单位为分"`
	Kind        uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:商品形态 1=实物 2=虚拟"`
	DigitalFile sql.NullString `gorm:"column:digital_file_url;type:varchar(512);comment:虚拟商品文件地址"`
	Image       string         `gorm:"type:varchar(512);comment:商品主图"`
	Status      uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

func (SPU) TableName() string {
	return "product_spus"
}

type SKU struct {
	Id          int64  `gorm:"primaryKey,autoIncrement;comment:商品SKU自增ID"`
	SN          string `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_product_sku_sn;comment:商品SKU序列号"`
	SPUID       int64  `gorm:"column:spu_id;not null;uniqueIndex:uniq_spu_attrs_hash;comment:商品SPU自增ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:SKU名称"`
	Description string `gorm:"not null;comment:SKU描述"`
	Price       int64  `gorm:"not null;comment:SKU价格, 单位为分, 0表示跟随SPU"`
	Stock       int64  `gorm:"not null;comment:库存数量"`
	Attrs       string `gorm:"type:text;comment:销售属性, JSON数组"`
	AttrsHash   string `gorm:"column:attrs_hash;type:varchar(512);not null;uniqueIndex:uniq_spu_attrs_hash;comment:归一化的属性组合"`
	Image       string `gorm:"type:varchar(512);comment:SKU图片"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

func (SKU) TableName() string {
	return "product_skus"
}

type Category struct {
	Id    int64  `gorm:"primaryKey,autoIncrement;comment:类目自增ID"`
	Name  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_category_name;comment:类目名称"`
	Sort  int64  `gorm:"not null;default:0;comment:展示顺序, 越小越靠前"`
	Ctime int64
	Utime int64
}

func (Category) TableName() string {
	return "product_categories"
}

type Attribute struct {
	Id    int64  `gorm:"primaryKey,autoIncrement;comment:销售属性自增ID"`
	Name  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_attribute_name;comment:属性名, 例如颜色"`
	Ctime int64
	Utime int64
}

func (Attribute) TableName() string {
	return "product_attributes"
}

type AttributeValue struct {
	Id          int64  `gorm:"primaryKey,autoIncrement;comment:属性值自增ID"`
	AttributeID int64  `gorm:"column:attribute_id;not null;uniqueIndex:uniq_attribute_value;comment:所属属性ID"`
	Value       string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_attribute_value;comment:属性值, 例如红色"`
	Ctime       int64
	Utime       int64
}

func (AttributeValue) TableName() string {
	return "product_attribute_values"
}
