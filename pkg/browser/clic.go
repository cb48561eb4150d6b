package browser

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Clic hace clic sobre un elemento probando estrategias en orden: clic
// nativo del navegador, clic por JavaScript y, al final, eventos de mouse
// sintéticos. Los botones del destino a veces quedan tapados por overlays
// que rompen el clic nativo.
func Clic(page *rod.Page, el *rod.Element) error {
	if err := clicNativo(el); err == nil {
		return nil
	} else {
		log.Printf("⚠️  Clic nativo falló, probando JS: %v", err)
	}

	if _, err := el.Eval(`() => this.click()`); err == nil {
		return nil
	} else {
		log.Printf("⚠️  Clic JS falló, probando eventos sintéticos: %v", err)
	}

	if err := clicSintetico(el); err != nil {
		return fmt.Errorf("ninguna estrategia de clic funcionó: %w", err)
	}
	return nil
}

func clicNativo(el *rod.Element) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if err := el.ScrollIntoView(); err != nil {
		return err
	}
	return el.Timeout(5 * time.Second).Click(proto.InputMouseButtonLeft, 1)
}

func clicSintetico(el *rod.Element) error {
	_, err := el.Eval(`() => {
		const eventos = ['mousedown', 'mouseup', 'click'];
		for (const tipo of eventos) {
			this.dispatchEvent(new MouseEvent(tipo, { bubbles: true, cancelable: true, view: window }));
		}
	}`)
	return err
}

// ClicPorTexto localiza el elemento por selector + texto y le hace clic.
func ClicPorTexto(page *rod.Page, selector, texto string) error {
	el, err := ElementoPorTexto(page, selector, texto)
	if err != nil {
		return err
	}
	return Clic(page, el)
}
