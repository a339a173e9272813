package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arl/goregion/buildctx"
	"github.com/arl/goregion/sceneio"
)

func check(err error) {
	if err != nil {
		log.Fatalln(err)
		os.Exit(1)
	}
}

func main() {
	sc, err := sceneio.Load("testdata/scene.yml")
	check(err)

	ctx := buildctx.New()

	r, err := sceneio.BuildWithContext(sc, ctx)
	check(err)

	fmt.Println("region built successfully")
	fmt.Printf("extent: %v\n", r.Extent())
	fmt.Printf("rect count: %d\n", r.RectCount())

	for _, m := range ctx.Messages() {
		fmt.Printf("[%s] %s\n", m.Category, m.Text)
	}

	if r.IsInside(20, 10) {
		fmt.Println("point (20,10) is inside the region")
	} else {
		fmt.Println("point (20,10) is outside the region")
	}
}
