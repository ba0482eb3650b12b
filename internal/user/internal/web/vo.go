package web

import (
	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Profile struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

type EditReq struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type WechatCallback struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type Address struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	Default    bool   `json:"default"`
}

type SaveAddressReq struct {
	Address Address `json:"address"`
}

type AddressIDReq struct {
	ID int64 `json:"id"`
}

func newAddress(addr domain.Address) Address {
	return Address{
		ID:         addr.ID,
		Name:       addr.Name,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		Region:     addr.Region,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		Phone:      addr.Phone,
		Default:    addr.Default,
	}
}

func newAddresses(addrs []domain.Address) []Address {
	return slice.Map(addrs, func(_ int, src domain.Address) Address {
		return newAddress(src)
	})
}

func (a Address) toDomain(uid int64) domain.Address {
	return domain.Address{
		ID:         a.ID,
		UID:        uid,
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		Default:    a.Default,
	}
}
