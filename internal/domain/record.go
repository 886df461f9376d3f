package domain

import "encoding/json"

// Keys under which collections are persisted in the key-value store.
const (
	KeyCategories = "categories"
	KeyServices   = "services"
	KeyBanners    = "banners"
	KeyUser       = "user"
)

// Record is a value persisted as a whole under a fixed key.
type Record interface {
	RecordKey() string
	RecordValue() ([]byte, error)
}

// DefaultRecordValue provides a common implementation for RecordValue
func DefaultRecordValue(record interface{}) ([]byte, error) {
	return json.Marshal(record)
}

func UnmarshalRecord[T any](data []byte) (T, error) {
	var t T
	err := json.Unmarshal(data, &t)
	return t, err
}

type Categories []Category

func (c Categories) RecordKey() string {
	return KeyCategories
}

func (c Categories) RecordValue() ([]byte, error) {
	return DefaultRecordValue(c)
}

type Services []Service

func (s Services) RecordKey() string {
	return KeyServices
}

func (s Services) RecordValue() ([]byte, error) {
	return DefaultRecordValue(s)
}

type Banners []Banner

func (b Banners) RecordKey() string {
	return KeyBanners
}

func (b Banners) RecordValue() ([]byte, error) {
	return DefaultRecordValue(b)
}
