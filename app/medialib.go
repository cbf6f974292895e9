package main

import (
	"fmt"
	"os"

	"github.com/karlseguin/medialib"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	m := medialib.New(medialib.Configure().
		Backing(medialib.ListBacking).
		Logger(logger).
		OnEvent(func(e medialib.Event) {
			fmt.Println("event:", e.Kind, e.Collection)
		}))

	dune, _ := m.AddRecord("DVD", "  Dune   (1984) ")
	alien, _ := m.AddRecord("VHS", "Alien")
	m.AddRecord("BluRay", "Blade Runner")
	m.ModifyRating(dune.ID(), 4)
	m.ModifyRating(alien.ID(), 5)

	m.AddCollection("scifi")
	m.AddCollection("horror")
	m.AddMember("scifi", dune.ID())
	m.AddMember("scifi", alien.ID())
	m.AddMember("horror", alien.ID())
	m.CombineCollections("scifi", "horror", "favourites")

	if _, err := m.DeleteRecord("Alien"); err != nil {
		fmt.Println(err)
	}

	m.PrintLibrary(os.Stdout)
	m.PrintCatalog(os.Stdout)
	for _, r := range m.ListRatings() {
		fmt.Println(r)
	}
	m.CollectionStats().Render(os.Stdout)
	m.Allocations().Render(os.Stdout)
}
