// Command presets downloads world parameter preset bundles into a local
// directory, so the server can be pointed at a curated config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base = flag.String("base", "https://github.com/lodeworks/tileworld-presets.git", "base url")
		name = flag.String("name", "default", "preset bundle name")
		out  = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *name == "" {
		panic("preset name required")
	}

	path := fmt.Sprintf("%s/%s", *out, *name)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading preset %s", path)

	url := fmt.Sprintf("git::%s//presets/%s", *base, *name)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading preset %s", path)
}
