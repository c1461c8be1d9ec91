package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/interfaces/guard"
)

func TestEvaluate(t *testing.T) {
	admin := &entity.Session{UserID: "1", Role: entity.RoleAdmin}
	recruiter := &entity.Session{UserID: "2", Role: entity.RoleRecruiter}

	cases := []struct {
		name     string
		restored bool
		session  *entity.Session
		roles    []entity.Role
		want     guard.Decision
	}{
		// Mientras la restauración está pendiente nunca se redirige
		{"restauracion pendiente", false, nil, nil, guard.Pending},
		{"restauracion pendiente con roles", false, admin, []entity.Role{entity.RoleAdmin}, guard.Pending},
		// Sin sesión → login
		{"sin sesion", true, nil, nil, guard.RedirectLogin},
		{"sin sesion ruta admin", true, nil, []entity.Role{entity.RoleAdmin}, guard.RedirectLogin},
		// Autenticado sin el rol → forbidden
		{"recruiter en ruta admin", true, recruiter, []entity.Role{entity.RoleAdmin}, guard.RedirectForbidden},
		// Acceso concedido
		{"admin en ruta admin", true, admin, []entity.Role{entity.RoleAdmin}, guard.Allow},
		{"multi-rol", true, recruiter, []entity.Role{entity.RoleAdmin, entity.RoleRecruiter}, guard.Allow},
		{"ruta publica-dentro-de-auth", true, recruiter, nil, guard.Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := guard.Evaluate(tc.restored, tc.session, tc.roles...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecision_RedirectPath(t *testing.T) {
	assert.Equal(t, "/login", guard.RedirectLogin.RedirectPath())
	assert.Equal(t, "/unauthorized", guard.RedirectForbidden.RedirectPath())
	assert.Empty(t, guard.Allow.RedirectPath())
	assert.Empty(t, guard.Pending.RedirectPath())
}
