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

package repository

import (
	"context"

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type AddressRepository interface {
	ListByUID(ctx context.Context, uid int64) ([]domain.Address, error)
	Save(ctx context.Context, addr domain.Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	SetDefault(ctx context.Context, uid, id int64) error
}

type addressRepository struct {
	dao dao.AddressDAO
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

func (r *addressRepository) ListByUID(ctx context.Context, uid int64) ([]domain.Address, error) {
	addrs, err := r.dao.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(addrs, func(_ int, src dao.Address) domain.Address {
		return domain.Address{
			ID:         src.Id,
			UID:        src.UID,
			Name:       src.Name,
			Line1:      src.Line1,
			Line2:      src.Line2,
			City:       src.City,
			Region:     src.Region,
			PostalCode: src.PostalCode,
			Country:    src.Country,
			Phone:      src.Phone,
			Default:    src.Default,
		}
	}), nil
}

func (r *addressRepository) Save(ctx context.Context, addr domain.Address) (int64, error) {
	return r.dao.Save(ctx, dao.Address{
		Id:         addr.ID,
		UID:        addr.UID,
		Name:       addr.Name,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		Region:     addr.Region,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		Phone:      addr.Phone,
		Default:    addr.Default,
	})
}

func (r *addressRepository) Delete(ctx context.Context, uid, id int64) error {
	return r.dao.Delete(ctx, uid, id)
}

func (r *addressRepository) SetDefault(ctx context.Context, uid, id int64) error {
	return r.dao.SetDefault(ctx, uid, id)
}
