package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCandidateRequest entrada para registrar un candidato. RegistrantID
// y RegistrantRole se toman de la sesión activa cuando vienen vacíos.
type CreateCandidateRequest struct {
	Nombre         string `json:"nombre"`
	Telefono       string `json:"telefono"`
	Municipio      string `json:"municipio"`
	Escolaridad    string `json:"escolaridad"`
	Cuenta         string `json:"cuenta"`
	Vacante        string `json:"vacante"`
	Estatus        string `json:"estatus"`
	RegistrantID   string `json:"registrantId"`
	RegistrantRole string `json:"registrantRole"`
	// RegistrationDate opcional; si viene vacía se estampa la fecha de
	// creación (YYYY-MM-DD).
	RegistrationDate string `json:"registrationDate"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el caso de uso).
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CreateAssignmentRequest entrada para asignar una empresa a un inplant.
// Ambos se identifican por nombre, tal como los captura el formulario.
type CreateAssignmentRequest struct {
	CompanyName string `json:"companyName"`
	InplantName string `json:"inplantName"`
}

// DashboardResponse resumen por rol del tablero.
type DashboardResponse struct {
	TotalCandidates  int            `json:"totalCandidates"`
	TotalCompanies   int            `json:"totalCompanies"`
	TotalUsers       int            `json:"totalUsers"`
	TotalAssignments int            `json:"totalAssignments"`
	ByEstatus        map[string]int `json:"byEstatus"`
}
