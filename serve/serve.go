// Serves the live preview page for a geogrid artwork.
package main

import (
	"flag"
	"fmt"
	"os"

	geogrid "github.com/0xJensMalm/GeoGrid"
	"github.com/0xJensMalm/GeoGrid/web"
)

var (
	portFlag = flag.Int("port", 8484, "Port to listen on")
	hashFlag = flag.String("hash", "", "Share hash to show by default, empty for a random seed")
	favsFlag = flag.String("favs", geogrid.DefaultFavPath(), "Favorites file to serve and watch, empty to disable")
)

func main() {
	flag.Parse()

	cfg := geogrid.NewConfig()
	if *hashFlag != "" {
		c, err := geogrid.ParseHash(*hashFlag)
		if err != nil {
			fmt.Printf("Bad hash %q: %v\n", *hashFlag, err)
			os.Exit(1)
		}
		cfg = c
	}

	var store *geogrid.FavStore
	if *favsFlag != "" {
		store = geogrid.NewFavStore(*favsFlag)
	}

	srv := web.NewServer(*portFlag, cfg, store)
	fmt.Printf("Serving %s on http://localhost%s\n", cfg.Hash(), srv.Addr())
	if err := srv.Start(); err != nil {
		fmt.Printf("Server stopped: %v\n", err)
		os.Exit(1)
	}
}
