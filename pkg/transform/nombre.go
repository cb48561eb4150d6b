package transform

import "strings"

// NombreSeparado son las partes del nombre tal como las pide el formulario
// del ERP destino.
type NombreSeparado struct {
	Name        string
	MiddleName  string
	LastName    string
	MothersName string
}

// articulos son las partículas que en nombres españoles pertenecen al
// apellido, no al segundo nombre.
var articulos = map[string]bool{
	"DE": true, "DEL": true, "LA": true, "LAS": true, "LOS": true,
	"Y": true, "MC": true, "VON": true, "VAN": true,
}

// SepararNombre divide un nombre completo en sus partes.
//
// Heurística por número de tokens:
//   - 1: solo nombre
//   - 2: nombre + apellido paterno
//   - 3: nombre + apellido paterno + apellido materno
//   - 4+: primer token nombre, último apellido materno, penúltimo apellido
//     paterno, los de en medio segundo nombre; con una pasada de corrección
//     que reata partículas ("De", "Del", "La", secuencias "De La/Las/Los")
//     al apellido en lugar de dejarlas en el segundo nombre.
//
// Es una heurística de mejor esfuerzo pensada para convenciones españolas;
// nombres fuera de esa convención pueden quedar mal divididos y eso es un
// límite conocido, no un bug a "corregir" silenciosamente.
func SepararNombre(completo string) NombreSeparado {
	var tokens []string
	for _, t := range strings.Fields(completo) {
		if esPuntuacion(t) {
			continue
		}
		tokens = append(tokens, t)
	}

	var res NombreSeparado
	switch len(tokens) {
	case 0:
		return res
	case 1:
		res.Name = tokens[0]
		return res
	case 2:
		res.Name = tokens[0]
		res.LastName = tokens[1]
		return res
	case 3:
		res.Name = tokens[0]
		res.LastName = tokens[1]
		res.MothersName = tokens[2]
		return res
	}

	res.Name = tokens[0]
	res.MothersName = tokens[len(tokens)-1]
	apellido := []string{tokens[len(tokens)-2]}
	medio := tokens[1 : len(tokens)-2]

	// Pasada de corrección: mover partículas de la cola del segundo nombre
	// al frente del apellido. "Juan De La Cruz Martinez" debe producir
	// apellido "De La Cruz", no segundo nombre "De La".
	for len(medio) > 0 {
		cola := strings.ToUpper(medio[len(medio)-1])
		if len(medio) >= 2 {
			previa := strings.ToUpper(medio[len(medio)-2])
			if previa == "DE" && (cola == "LA" || cola == "LAS" || cola == "LOS") {
				apellido = append([]string{medio[len(medio)-2], medio[len(medio)-1]}, apellido...)
				medio = medio[:len(medio)-2]
				continue
			}
		}
		if articulos[cola] {
			apellido = append([]string{medio[len(medio)-1]}, apellido...)
			medio = medio[:len(medio)-1]
			continue
		}
		break
	}

	res.LastName = strings.Join(apellido, " ")
	res.MiddleName = strings.Join(medio, " ")
	return res
}

func esPuntuacion(t string) bool {
	for _, r := range t {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 127 {
			return false
		}
	}
	return true
}
