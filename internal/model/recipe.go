package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Ingredient is one line of a recipe's shopping list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Instruction is one ordered cooking step. CookingTime is in minutes.
type Instruction struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
	CookingTime int    `json:"cookingTime"`
}

// Ingredients is stored as a JSON column
type Ingredients []Ingredient

// Value implements the driver.Valuer interface
func (a Ingredients) Value() (driver.Value, error) {
	return jsonValue(a)
}

// Scan implements the sql.Scanner interface
func (a *Ingredients) Scan(value interface{}) error {
	return jsonScan(value, a)
}

// Instructions is stored as a JSON column
type Instructions []Instruction

// Value implements the driver.Valuer interface
func (a Instructions) Value() (driver.Value, error) {
	return jsonValue(a)
}

// Scan implements the sql.Scanner interface
func (a *Instructions) Scan(value interface{}) error {
	return jsonScan(value, a)
}

// Recipe is a dish record served by the recipe lookup. ID is the table key
// and is never part of the JSON body.
type Recipe struct {
	ID           int          `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Name         string       `gorm:"size:255;not null" json:"name"`
	Description  string       `gorm:"type:text" json:"description"`
	Ingredients  Ingredients  `gorm:"type:text;not null" json:"ingredients"`
	Instructions Instructions `gorm:"type:text;not null" json:"instructions"`
	TotalTime    int          `json:"totalTime"`
	Difficulty   string       `gorm:"size:50" json:"difficulty"`
	Servings     int          `json:"servings"`
}

// TableName overrides the gorm table name
func (Recipe) TableName() string {
	return "recipes"
}

// Clone returns a deep copy so callers cannot mutate a shared record.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Ingredients = append(Ingredients(nil), r.Ingredients...)
	out.Instructions = append(Instructions(nil), r.Instructions...)
	return &out
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(value interface{}, dest interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
	return json.Unmarshal(bytes, dest)
}
