// Package auth implementa el gestor de sesión del cliente: autenticación
// contra el directorio de usuarios, sesión activa del proceso y cálculo de
// la ruta de aterrizaje por rol.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/domain/repository"
	"github.com/jhoicas/recluta-track/pkg/token"
)

// LoginPath ruta a la que se navega tras cerrar sesión o al acceder sin
// autenticar.
const LoginPath = "/login"

// Config parámetros del token de sesión persistido.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginResult sesión establecida más la ruta de aterrizaje del rol.
type LoginResult struct {
	Session    *entity.Session
	RedirectTo string
}

// SessionManager mantiene a lo sumo una sesión activa por proceso.
// Máquina de estados: NoAutenticado --login--> Autenticado(rol)
// --logout--> NoAutenticado. El login es atómico (una sola verificación
// de credenciales, sin pasos intermedios).
type SessionManager struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config

	current  *entity.Session
	restored bool
}

// NewSessionManager construye el gestor. La sesión persistida no se
// restaura aquí: llamar Restore al arranque.
func NewSessionManager(users repository.UserRepository, sessions repository.SessionRepository, cfg Config) *SessionManager {
	return &SessionManager{users: users, sessions: sessions, cfg: cfg}
}

// Restore repone la sesión persistida bajo authUser. La ausencia no es un
// error, solo "sin sesión". Un token manipulado, expirado o con un rol
// fuera del conjunto se descarta y se limpia: el store local es caché, no
// fuente de verdad.
func (m *SessionManager) Restore() error {
	defer func() { m.restored = true }()

	tok, err := m.sessions.Load()
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	claims, err := token.Parse(m.cfg.Secret, tok)
	if err != nil {
		return m.sessions.Clear()
	}
	role := entity.Role(claims.Role)
	if !role.Valid() {
		return m.sessions.Clear()
	}
	m.current = &entity.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
		Name:   claims.Name,
	}
	return nil
}

// Login verifica credenciales contra el directorio y establece la sesión.
// El email se compara por igualdad exacta (sensible a mayúsculas, contrato
// observado) y la contraseña contra su hash bcrypt. Un fallo devuelve
// siempre domain.ErrInvalidCredentials, sin distinguir email desconocido
// de contraseña incorrecta, y deja intacta cualquier sesión previa.
func (m *SessionManager) Login(in dto.LoginRequest) (*LoginResult, error) {
	user, err := m.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// La sesión nunca retiene la contraseña.
	session := &entity.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
	}
	tok, err := token.Generate(m.cfg.Secret, user.ID, user.Email, user.Name, string(user.Role), m.cfg.Issuer, m.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := m.sessions.Save(tok); err != nil {
		return nil, err
	}
	m.current = session
	m.restored = true
	return &LoginResult{Session: session, RedirectTo: user.Role.Home()}, nil
}

// Logout limpia la sesión y devuelve la ruta de navegación. Es un no-op
// idempotente cuando no hay sesión activa, nunca un error.
func (m *SessionManager) Logout() (redirectTo string, err error) {
	m.current = nil
	if err := m.sessions.Clear(); err != nil {
		return LoginPath, err
	}
	return LoginPath, nil
}

// Current devuelve la sesión activa o nil ("sin sesión", no es error).
func (m *SessionManager) Current() *entity.Session {
	return m.current
}

// Restored reporta si ya se intentó reponer la sesión persistida. Mientras
// sea false el guard debe responder "pendiente" en vez de redirigir.
func (m *SessionManager) Restored() bool {
	return m.restored
}

// IsAuthorized reporta si la sesión puede acceder a una ruta que permite
// allowedRoles. Una lista vacía significa ruta pública-dentro-de-auth:
// basta con estar autenticado.
func IsAuthorized(session *entity.Session, allowedRoles ...entity.Role) bool {
	if session == nil {
		return false
	}
	if len(allowedRoles) == 0 {
		return true
	}
	for _, r := range allowedRoles {
		if session.Role == r {
			return true
		}
	}
	return false
}
