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

package service

import (
	"context"
	"fmt"

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/repository"
	"github.com/pkg/errors"
)

var (
	ErrAddressNotFound = errors.New("地址不存在")
	ErrInvalidAddress  = errors.New("地址信息不完整")
)

type AddressService interface {
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	// Save 新增或更新, 归属以session里的uid为准
	Save(ctx context.Context, addr domain.Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	SetDefault(ctx context.Context, uid, id int64) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.ListByUID(ctx, uid)
}

func (s *addressService) Save(ctx context.Context, addr domain.Address) (int64, error) {
	if addr.Name == "" || addr.Line1 == "" || addr.City == "" || addr.Country == "" {
		return 0, fmt.Errorf("%w: uid: %d", ErrInvalidAddress, addr.UID)
	}
	id, err := s.repo.Save(ctx, addr)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id: %d", ErrAddressNotFound, addr.ID)
	}
	return id, err
}

func (s *addressService) Delete(ctx context.Context, uid, id int64) error {
	err := s.repo.Delete(ctx, uid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id: %d", ErrAddressNotFound, id)
	}
	return err
}

func (s *addressService) SetDefault(ctx context.Context, uid, id int64) error {
	err := s.repo.SetDefault(ctx, uid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id: %d", ErrAddressNotFound, id)
	}
	return err
}
