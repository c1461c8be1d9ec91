package entity

// Estatus estado del candidato dentro del pipeline de reclutamiento.
type Estatus string

const (
	EstatusCitado       Estatus = "Citado"
	EstatusEntrevistado Estatus = "Entrevistado"
	EstatusContratado   Estatus = "Contratado"
	EstatusRechazado    Estatus = "Rechazado"
)

// Valid reporta si el estatus pertenece al conjunto cerrado.
func (e Estatus) Valid() bool {
	switch e {
	case EstatusCitado, EstatusEntrevistado, EstatusContratado, EstatusRechazado:
		return true
	}
	return false
}

// Estatuses devuelve los estatus válidos en orden de pipeline.
func Estatuses() []Estatus {
	return []Estatus{EstatusCitado, EstatusEntrevistado, EstatusContratado, EstatusRechazado}
}

// Candidate representa un candidato registrado. Cuenta guarda el nombre de
// la empresa (no su id), tal como lo captura el formulario de registro.
// RegistrationDate es fecha ISO sin hora (YYYY-MM-DD).
type Candidate struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Telefono         string  `json:"telefono"`
	Municipio        string  `json:"municipio"`
	Escolaridad      string  `json:"escolaridad"`
	Cuenta           string  `json:"cuenta"`
	Vacante          string  `json:"vacante"`
	Estatus          Estatus `json:"estatus"`
	RegistrantID     string  `json:"registrantId"`
	RegistrantRole   Role    `json:"registrantRole"`
	RegistrationDate string  `json:"registrationDate"`
}
