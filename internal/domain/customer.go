package domain

// Gender é o valor bruto armazenado no store externo
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// GenderMeta contém o rótulo e a cor de exibição de um gênero
type GenderMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var genderLabels = map[Gender]string{
	GenderMale:           "male",
	GenderFemale:         "female",
	GenderPreferNotToSay: "secret",
}

var genderColors = map[string]string{
	"male":   "blue",
	"female": "red",
	"secret": "gold",
}

// MetaForGender resolve rótulo e cor para o valor bruto de gênero.
// Valores ausentes ou desconhecidos viram "-" com a cor padrão.
func MetaForGender(raw Gender) GenderMeta {
	label, ok := genderLabels[raw]
	if !ok {
		label = string(raw)
		if label == "" {
			label = "-"
		}
	}

	color, ok := genderColors[label]
	if !ok {
		color = "default"
	}

	return GenderMeta{Label: label, Color: color}
}
