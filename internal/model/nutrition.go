package model

// NutritionInfo holds per-serving nutrition facts for a recipe. The
// extended micronutrient fields are optional and omitted when unset.
type NutritionInfo struct {
	RecipeID     int      `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Calories     float64  `json:"calories"`
	Carbohydrate float64  `json:"carbohydrate"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Sugar        float64  `json:"sugar"`
	Sodium       float64  `json:"sodium"`
	SaturatedFat float64  `json:"saturatedFat"`
	TransFat     float64  `json:"transFat"`
	Cholesterol  float64  `json:"cholesterol"`
	DietaryFiber *float64 `json:"dietaryFiber,omitempty"`
	Potassium    *float64 `json:"potassium,omitempty"`
	VitaminA     *float64 `json:"vitaminA,omitempty"`
	VitaminC     *float64 `json:"vitaminC,omitempty"`
	Calcium      *float64 `json:"calcium,omitempty"`
	Iron         *float64 `json:"iron,omitempty"`
}

// TableName overrides the gorm table name
func (NutritionInfo) TableName() string {
	return "nutrition_facts"
}

// Clone returns a copy that shares no pointers with the original.
func (n *NutritionInfo) Clone() *NutritionInfo {
	out := *n
	out.DietaryFiber = cloneFloat(n.DietaryFiber)
	out.Potassium = cloneFloat(n.Potassium)
	out.VitaminA = cloneFloat(n.VitaminA)
	out.VitaminC = cloneFloat(n.VitaminC)
	out.Calcium = cloneFloat(n.Calcium)
	out.Iron = cloneFloat(n.Iron)
	return &out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
