package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mchmarny/textmenu/pkg/config"
	"github.com/mchmarny/textmenu/pkg/menu"
	"github.com/mchmarny/textmenu/pkg/metric"
)

// buildMenus wires the demo menu tree:
//
//	Another sub-menu                 -> G
//	Menu Item 'B'
//	Menu Item 'A'
//	A sub-menu of multiple options   -> F, E, D, C
//	Exit Application
func buildMenus(in menu.LineReader, out io.Writer, cfg config.Config, counter metric.IncrementalCounter) *menu.Menu {
	opts := append(cfg.Options(), menu.WithOutput(out), menu.WithCounter(counter))
	mainMenu := menu.New(in, opts...)

	subMenuOne := mainMenu.NewSubMenu(menu.WithPrompt(cfg.Menu.Prompt))
	for _, name := range []string{"C", "D", "E", "F"} {
		subMenuOne.AddFunc(fmt.Sprintf("Menu Item '%s'", name), demoAction(out, name, cfg.ActionDelay))
	}

	subMenuTwo := mainMenu.NewSubMenu(menu.WithPrompt(cfg.Menu.Prompt))
	subMenuTwo.AddFunc("Menu Item 'G'", demoAction(out, "G", cfg.ActionDelay))

	mustAttach(mainMenu, "A sub-menu of multiple options", subMenuOne)
	mainMenu.AddFunc("Menu Item 'A'", demoAction(out, "A", cfg.ActionDelay))
	mainMenu.AddFunc("Menu Item 'B'", demoAction(out, "B", cfg.ActionDelay))
	mustAttach(mainMenu, "Another sub-menu", subMenuTwo)

	return mainMenu
}

// mustAttach panics on attach errors, which only a miswired tree can cause.
func mustAttach(parent *menu.Menu, label string, sub *menu.Menu) {
	if err := parent.AddSubMenu(label, sub); err != nil {
		panic(fmt.Sprintf("attaching %q: %v", label, err))
	}
}

func demoAction(out io.Writer, name string, delay time.Duration) func() {
	return func() {
		fmt.Fprintf(out, "Entered menuItem%s()\n", name)
		time.Sleep(delay)
	}
}
