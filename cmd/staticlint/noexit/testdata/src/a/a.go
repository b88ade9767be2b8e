package main

import (
	"fmt"
	"log"
	"os"
	osalias "os"
)

func main() {
	fmt.Println("start")
	os.Exit(1)      // want "прямой вызов os.Exit в функции main запрещен"
	osalias.Exit(2) // want "прямой вызов os.Exit в функции main запрещен"
	log.Fatal("x")  // want "прямой вызов log.Fatal в функции main запрещен"
	log.Fatalf("x") // want "прямой вызов log.Fatalf в функции main запрещен"

	func() {
		os.Exit(3) // want "прямой вызов os.Exit в функции main запрещен"
	}()

	log.Println("ok")
}

func helper() {
	os.Exit(4)
	log.Fatal("allowed outside main")
}
