package entity

// Company representa una empresa cliente ("cuenta") contra la que se
// colocan candidatos.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Assignment vincula una empresa con un usuario inplant. Es un registro
// denormalizado: conserva los nombres vigentes al momento de crearse y no
// se re-valida contra renombres posteriores.
type Assignment struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	InplantID   string `json:"inplantId"`
	InplantName string `json:"inplantName"`
}
