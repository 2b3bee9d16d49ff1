package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table and seeds the
// default role grants when they are missing.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := e.seedDefaults(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seedDefaults() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range DefaultPolicies() {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}
	for _, g := range RoleInheritance() {
		ok, err := e.enforcer.AddGroupingPolicy(g[0], g[1])
		if err != nil {
			return fmt.Errorf("failed to add role inheritance [%s, %s]: %w", g[0], g[1], err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("permission policies initialized", "added", added)
	}
	return nil
}

// Enforce reports whether role may perform action on resource.
func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// GetPermissionsForRole includes permissions inherited from lower roles.
func (e *Enforcer) GetPermissionsForRole(role string) ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	permissions, err := e.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for role: %w", err)
	}

	return permissions, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
