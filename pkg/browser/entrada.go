package browser

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
)

var ritmo = RitmoPorDefecto()

// EscribirCampo llena un input de texto simulando al usuario: foco, limpiar,
// tecleo carácter por carácter al ritmo de un capturista y blur. Los
// formularios del destino validan con listeners de input/blur, así que
// setear .value directo no basta.
func EscribirCampo(el *rod.Element, valor string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error escribiendo campo: %v", r)
		}
	}()

	if err := el.Focus(); err != nil {
		return fmt.Errorf("error enfocando campo: %w", err)
	}
	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}

	for _, r := range valor {
		if err := el.Type(input.Key(r)); err != nil {
			// caracteres fuera del mapa de teclas (acentos, ñ) van por Input
			if err := el.Input(string(r)); err != nil {
				return fmt.Errorf("error tecleando %q: %w", r, err)
			}
		}
		time.Sleep(ritmo.PausaTecla())
	}

	_, _ = el.Eval(`() => this.blur()`)
	return nil
}

// ForzarValor setea el value por JavaScript y dispara input/change. Es el
// último recurso para campos que rechazan el tecleo (readonly hasta focus,
// datepickers).
func ForzarValor(el *rod.Element, valor string) error {
	_, err := el.Eval(`(v) => {
		this.value = v;
		this.dispatchEvent(new Event('input', { bubbles: true }));
		this.dispatchEvent(new Event('change', { bubbles: true }));
	}`, valor)
	if err != nil {
		return fmt.Errorf("error forzando valor: %w", err)
	}
	return nil
}

// LlenarCampo intenta el tecleo simulado y cae a ForzarValor si falla o si
// el campo no retuvo el valor.
func LlenarCampo(el *rod.Element, valor string) error {
	if err := EscribirCampo(el, valor); err == nil {
		if actual, errV := valorActual(el); errV == nil && strings.TrimSpace(actual) == strings.TrimSpace(valor) {
			return nil
		}
	}
	log.Printf("⚠️  Tecleo no retuvo el valor, forzando por JS")
	return ForzarValor(el, valor)
}

func valorActual(el *rod.Element) (string, error) {
	v, err := el.Eval(`() => this.value`)
	if err != nil {
		return "", err
	}
	return v.Value.Str(), nil
}

// SeleccionarOpcion elige una opción de un <select> nativo por texto visible:
// primero match exacto, luego por substring. Dispara change para que el
// formulario registre la selección.
func SeleccionarOpcion(el *rod.Element, texto string) error {
	v, err := el.Eval(`(texto) => {
		const opciones = Array.from(this.options || []);
		const limpio = s => (s || '').trim().toLowerCase();
		let opt = opciones.find(o => limpio(o.textContent) === limpio(texto));
		if (!opt) {
			opt = opciones.find(o => limpio(o.textContent).includes(limpio(texto)));
		}
		if (!opt) return false;
		this.value = opt.value;
		this.dispatchEvent(new Event('change', { bubbles: true }));
		return true;
	}`, texto)
	if err != nil {
		return fmt.Errorf("error seleccionando opción %q: %w", texto, err)
	}
	if !v.Value.Bool() {
		return fmt.Errorf("el select no tiene la opción %q", texto)
	}
	return nil
}

// SeleccionarCombo maneja los combos custom (div desplegable + lista de
// opciones): abre el combo con clic y elige la opción cuyo texto coincida.
func SeleccionarCombo(page *rod.Page, combo *rod.Element, texto string) error {
	if err := Clic(page, combo); err != nil {
		return fmt.Errorf("error abriendo combo: %w", err)
	}
	time.Sleep(400 * time.Millisecond)

	opcion, err := ElementoPorTexto(page, "li, .dropdown-item, .option, [role='option']", texto)
	if err != nil {
		return fmt.Errorf("el combo no mostró la opción %q: %w", texto, err)
	}
	return Clic(page, opcion)
}

// ElementoPorTexto busca entre los elementos del selector el primero cuyo
// texto coincida: exacto primero, substring después.
func ElementoPorTexto(page *rod.Page, selector, texto string) (*rod.Element, error) {
	elems, err := page.Timeout(5 * time.Second).Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("error buscando %q: %w", selector, err)
	}

	objetivo := strings.ToLower(strings.TrimSpace(texto))
	var porSubstring *rod.Element
	for _, el := range elems {
		t, err := el.Text()
		if err != nil {
			continue
		}
		t = strings.ToLower(strings.TrimSpace(t))
		if t == objetivo {
			return el, nil
		}
		if porSubstring == nil && strings.Contains(t, objetivo) {
			porSubstring = el
		}
	}
	if porSubstring != nil {
		return porSubstring, nil
	}
	return nil, fmt.Errorf("ningún %q con texto %q", selector, texto)
}
