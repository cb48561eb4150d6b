package browser

import (
	"math/rand"
	"time"
)

// Ritmo regula las pausas entre acciones del navegador para que la captura
// no martille al servidor: tecleo con velocidad variable y pausas entre
// unidades de trabajo con jitter. Los ERPs de origen y destino limitan
// sesiones que operan a velocidad de máquina.
type Ritmo struct {
	// caracteres por minuto del tecleo simulado
	VelocidadTecleo float64
}

// RitmoPorDefecto teclea a velocidad de capturista (180-300 CPM, fijada al
// crear el ritmo).
func RitmoPorDefecto() *Ritmo {
	return &Ritmo{VelocidadTecleo: 180 + rand.Float64()*120}
}

// PausaTecla es la espera entre caracteres tecleados, con variación.
func (r *Ritmo) PausaTecla() time.Duration {
	base := 60000.0 / r.VelocidadTecleo
	return ruido(base, base*0.4)
}

// PausaAccion es la espera corta entre acciones de un mismo formulario.
func (r *Ritmo) PausaAccion() time.Duration {
	return ruido(250, 100)
}

// PausaUnidad es la espera entre unidades de trabajo (un cliente, una
// cotización).
func (r *Ritmo) PausaUnidad() time.Duration {
	return ruido(2000, 700)
}

// ruido genera una duración alrededor de la media con desviación acotada;
// nunca menor a 20ms ni mayor a 5s.
func ruido(mediaMs, desvMs float64) time.Duration {
	ms := mediaMs + desvMs*rand.NormFloat64()
	if ms < 20 {
		ms = 20
	}
	if ms > 5000 {
		ms = 5000
	}
	return time.Duration(ms) * time.Millisecond
}
