package main

import "github.com/outofforest/objectid"

func main() {
	objectid.Main()
}
