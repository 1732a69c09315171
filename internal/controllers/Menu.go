package controllers

import (
	"fmt"
	"io"
	"ticketcounter/internal/providers"
)

type MenuItem struct {
	Key    string
	Title  string
	Action func() error
	Exit   bool
}

func (c *CommandController) MenuItems() []MenuItem {
	return []MenuItem{
		{Key: "1", Title: "Log new ticket", Action: func() error { return c.AddTicket("") }},
		{Key: "2", Title: "Log message sent (+1)", Action: func() error { return c.LogMessages(1) }},
		{Key: "3", Title: "View today's progress", Action: func() error { c.Today(); return nil }},
		{Key: "4", Title: "View weekly report", Action: func() error { c.Week(c.service.Now()); return nil }},
		{Key: "5", Title: "Export to CSV", Action: c.Export},
		{Key: "6", Title: "Exit", Exit: true},
	}
}

// Menu runs the interactive loop until Exit is chosen or input ends.
// Failures of a single action are reported and the loop continues.
func (c *CommandController) Menu() error {
	items := c.MenuItems()
	for {
		fmt.Fprintln(c.out, "Menu:")
		for _, item := range items {
			fmt.Fprintf(c.out, "%s. %s\n", item.Key, item.Title)
		}

		choice, err := c.prompt(fmt.Sprintf("Choose an option (1-%d): ", len(items)))
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		item, ok := findItem(items, choice)
		switch {
		case !ok:
			fmt.Fprintf(c.out, "Invalid choice. Pick 1-%d.\n", len(items))
		case item.Exit:
			fmt.Fprintln(c.out, "Bye. Keep counting.")
			return nil
		default:
			if err := item.Action(); err != nil {
				c.logger.Errorf(providers.TypeApp, "Menu action %q failed: %s", item.Title, err)
				fmt.Fprintf(c.out, "Error: %s\n", err)
			}
		}
		fmt.Fprintln(c.out)
	}
}

func findItem(items []MenuItem, key string) (MenuItem, bool) {
	for _, item := range items {
		if item.Key == key {
			return item, true
		}
	}
	return MenuItem{}, false
}
