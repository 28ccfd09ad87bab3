package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONArray holds a JSON array column produced by a relational aggregate.
// A NULL column, a JSON null and an unset value all surface as [] so clients
// always receive an array.
type JSONArray[T any] []T

func (a *JSONArray[T]) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*a = JSONArray[T]{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSON array", value)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to decode JSON array: %w", err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	*a = items
	return nil
}

func (a JSONArray[T]) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]T(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a JSONArray[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(a))
}

// GormDataType keeps gorm from treating the slice as a relationship.
func (JSONArray[T]) GormDataType() string {
	return "json"
}
