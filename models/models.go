/*
 *     Copyright 2023 The modelgate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/soft_delete"
)

// BaseModel carries the identity and audit columns shared by every
// durable entity. Rows are soft deleted, never removed.
type BaseModel struct {
	ID        uint                  `gorm:"primarykey;comment:id" json:"id"`
	CreatedAt time.Time             `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updated_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag;comment:soft delete flag" json:"is_del"`
}

// Paginate is a gorm scope applying offset pagination. Page numbers
// start at one.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

// scanBytes extracts the raw column value a driver hands back for a
// JSON-typed field.
func scanBytes(val any) ([]byte, error) {
	switch v := val.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T into a json column", val)
	}
}

// JSONMap persists a free-form JSON object in a text column. A/B test
// summaries use it.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	ba, err := json.Marshal(map[string]any(m))
	return string(ba), err
}

func (m *JSONMap) Scan(val any) error {
	ba, err := scanBytes(val)
	if err != nil {
		return err
	}

	t := map[string]any{}
	if err := json.Unmarshal(ba, &t); err != nil {
		return err
	}
	*m = JSONMap(t)
	return nil
}

func (m JSONMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]any(m))
}

func (m *JSONMap) UnmarshalJSON(b []byte) error {
	t := map[string]any{}
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*m = JSONMap(t)
	return nil
}

func (JSONMap) GormDataType() string {
	return "jsonmap"
}

func (JSONMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// Array persists an ordered list of strings as JSON text. Endpoint
// feature columns use it.
type Array []string

func (a Array) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	ba, err := json.Marshal([]string(a))
	return string(ba), err
}

func (a *Array) Scan(val any) error {
	ba, err := scanBytes(val)
	if err != nil {
		return err
	}

	t := []string{}
	if err := json.Unmarshal(ba, &t); err != nil {
		return err
	}
	*a = Array(t)
	return nil
}

func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}

	return json.Marshal([]string(a))
}

func (a *Array) UnmarshalJSON(b []byte) error {
	t := []string{}
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*a = Array(t)
	return nil
}

func (Array) GormDataType() string {
	return "array"
}

func (Array) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}
