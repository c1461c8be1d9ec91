// reclutrack es el front-end de línea de comandos del tracker de
// reclutamiento: tres superficies por rol (admin, recruiter, inplant)
// sobre un conjunto compartido de candidatos, empresas y usuarios
// persistido en un store local. Sin servidor ni red: todo corre en
// proceso contra el archivo del store.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
