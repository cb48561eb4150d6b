package browser

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Sesion es la sesión de navegador compartida por los comandos: un browser,
// una página principal y, ocasionalmente, una pestaña secundaria para los
// detalles. Toda la interacción con los ERPs pasa por aquí.
type Sesion struct {
	browser    *rod.Browser
	pagina     *rod.Page
	secundaria *rod.Page
}

// Opciones de arranque del navegador.
type Opciones struct {
	Headless bool
	// SlowMotion agrega una pausa entre acciones; útil para depurar con
	// Headless=false.
	SlowMotion time.Duration
}

// NuevaSesion lanza un Chrome controlado y abre la página principal en blanco.
func NuevaSesion(opts Opciones) (s *Sesion, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error lanzando navegador: %v", r)
		}
	}()

	// en modo visual una pausa entre acciones hace seguible la corrida
	if !opts.Headless && opts.SlowMotion == 0 {
		opts.SlowMotion = 500 * time.Millisecond
	}

	l := launcher.New().
		Headless(opts.Headless).
		Devtools(false)

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("error lanzando chrome: %w", err)
	}

	b := rod.New().ControlURL(url)
	if opts.SlowMotion > 0 {
		b = b.SlowMotion(opts.SlowMotion)
	}
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("error conectando al navegador: %w", err)
	}

	pagina, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("error abriendo página: %w", err)
	}

	return &Sesion{browser: b, pagina: pagina}, nil
}

// Pagina devuelve la página principal de la sesión.
func (s *Sesion) Pagina() *rod.Page {
	return s.pagina
}

// Cerrar cierra pestañas y navegador. Seguro de llamar múltiples veces.
func (s *Sesion) Cerrar() {
	defer func() { _ = recover() }()
	if s.secundaria != nil {
		s.secundaria.Close()
		s.secundaria = nil
	}
	if s.browser != nil {
		s.browser.Close()
	}
}

// Navegar carga una URL en la página principal y espera a que el documento
// esté listo. Si la espera de load falla (páginas con recursos colgados),
// cae a una pausa fija: es preferible seguir con un DOM parcial que abortar.
func (s *Sesion) Navegar(url string) error {
	log.Printf("🌐 Navegando a %s", url)
	if err := s.pagina.Navigate(url); err != nil {
		return fmt.Errorf("error navegando a %s: %w", url, err)
	}
	if err := s.esperarListo(s.pagina); err != nil {
		log.Printf("⚠️  La página no terminó de cargar, continuando: %v", err)
		time.Sleep(3 * time.Second)
	}
	return nil
}

func (s *Sesion) esperarListo(page *rod.Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	page.Timeout(20 * time.Second).MustWaitLoad()
	// readyState por si el evento load ya pasó antes de engancharnos
	page.Timeout(10 * time.Second).MustEval(`() => {
		return new Promise(resolve => {
			if (document.readyState === 'complete' || document.readyState === 'interactive') {
				resolve(true);
				return;
			}
			document.addEventListener('DOMContentLoaded', () => resolve(true));
		});
	}`)
	return nil
}

// HTML devuelve el HTML completo de la página principal.
func (s *Sesion) HTML() (string, error) {
	html, err := s.pagina.HTML()
	if err != nil {
		return "", fmt.Errorf("error obteniendo HTML: %w", err)
	}
	return html, nil
}

// IniciarSesion hace login heurístico: localiza el primer campo de usuario y
// de contraseña visibles, los llena y envía el formulario. El éxito se
// detecta por cambio de URL; los ERPs no exponen un marcador confiable.
func (s *Sesion) IniciarSesion(loginURL, usuario, password string) error {
	if err := s.Navegar(loginURL); err != nil {
		return err
	}

	urlAntes := s.pagina.MustInfo().URL

	campoUsuario, err := s.primerElemento(
		"input[name='username']",
		"input[name='usuario']",
		"input[name='email']",
		"input[type='email']",
		"input[type='text']",
	)
	if err != nil {
		return fmt.Errorf("no se encontró el campo de usuario: %w", err)
	}
	campoPassword, err := s.primerElemento(
		"input[name='password']",
		"input[name='contrasena']",
		"input[type='password']",
	)
	if err != nil {
		return fmt.Errorf("no se encontró el campo de contraseña: %w", err)
	}

	if err := EscribirCampo(campoUsuario, usuario); err != nil {
		return fmt.Errorf("error escribiendo usuario: %w", err)
	}
	if err := EscribirCampo(campoPassword, password); err != nil {
		return fmt.Errorf("error escribiendo contraseña: %w", err)
	}

	boton, err := s.primerElemento(
		"button[type='submit']",
		"input[type='submit']",
		"button",
	)
	if err != nil {
		// algunos logins no traen botón; Enter sobre la contraseña envía
		log.Printf("⚠️  Sin botón de login visible, se envía con Enter")
		if errE := campoPassword.Type(input.Enter); errE != nil {
			return fmt.Errorf("no se encontró el botón de login y Enter falló: %w", errE)
		}
	} else if err := Clic(s.pagina, boton); err != nil {
		return fmt.Errorf("error haciendo clic en login: %w", err)
	}

	time.Sleep(3 * time.Second)
	_ = s.esperarListo(s.pagina)

	urlDespues := s.pagina.MustInfo().URL
	if urlDespues == urlAntes {
		return fmt.Errorf("el login no redirigió (la URL sigue siendo %s); credenciales inválidas?", urlAntes)
	}
	log.Printf("✅ Sesión iniciada, redirigido a %s", urlDespues)
	return nil
}

// primerElemento prueba selectores en orden y devuelve el primer elemento
// visible que exista.
func (s *Sesion) primerElemento(selectores ...string) (*rod.Element, error) {
	for _, sel := range selectores {
		el, err := s.pagina.Timeout(2 * time.Second).Element(sel)
		if err != nil {
			continue
		}
		if visible, _ := el.Visible(); visible {
			return el, nil
		}
	}
	return nil, fmt.Errorf("ninguno de los selectores [%s] resolvió", strings.Join(selectores, ", "))
}

// AbrirSecundaria abre una URL en una pestaña nueva y la deja como pestaña
// de trabajo. La página principal conserva su estado (la tabla paginada).
func (s *Sesion) AbrirSecundaria(url string) (*rod.Page, error) {
	p, err := s.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("error abriendo pestaña secundaria: %w", err)
	}
	if err := s.esperarListo(p); err != nil {
		log.Printf("⚠️  Pestaña secundaria sin load completo: %v", err)
		time.Sleep(2 * time.Second)
	}
	s.secundaria = p
	return p, nil
}

// CerrarSecundaria cierra la pestaña de detalle y regresa el foco a la
// página principal.
func (s *Sesion) CerrarSecundaria() {
	if s.secundaria == nil {
		return
	}
	defer func() { _ = recover() }()
	s.secundaria.Close()
	s.secundaria = nil
	_, _ = s.pagina.Activate()
}
