package target

import (
	"fmt"

	"github.com/Casado7/migration-script/pkg/browser"
	"github.com/Casado7/migration-script/pkg/config"
)

// IniciarSesionDestino abre una sesión de navegador y hace login en el ERP
// destino con las credenciales de la configuración. El llamador es dueño de
// la sesión y debe cerrarla.
func IniciarSesionDestino(cfg *config.Config) (*browser.Sesion, error) {
	sesion, err := browser.NuevaSesion(browser.Opciones{Headless: cfg.Headless})
	if err != nil {
		return nil, err
	}
	if err := sesion.IniciarSesion(cfg.TargetLoginURL, cfg.TargetUsername, cfg.TargetPassword); err != nil {
		sesion.Cerrar()
		return nil, fmt.Errorf("error iniciando sesión en el destino: %w", err)
	}
	return sesion, nil
}
