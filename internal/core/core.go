package core

import (
	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	do "github.com/samber/do/v2"
)

var Package = do.Package(
	do.Lazy[*app.App](NewApp),
)

// NewApp creates a new App instance with dependencies from the injector.
func NewApp(i do.Injector) (*app.App, error) {
	cfg := do.MustInvoke[*config.Config](i)
	users := do.MustInvoke[*app.EntityStore[domain.User]](i)
	products := do.MustInvoke[*app.ProductsStore](i)

	session, err := do.Invoke[*app.SessionStore](i)
	if err != nil {
		return nil, err
	}

	return app.NewApp(cfg, users, products, session), nil
}
