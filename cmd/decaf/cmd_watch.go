package main

import (
	"fmt"
	"os"

	"github.com/decaf-lang/decaf/decaf/parser"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newWatchCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Reparse Decaf source files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			log := commonlog.GetLogger("decaf.watch")

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			for _, path := range args {
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("watch %s: %w", path, err)
				}
				reportParse(path)
			}

			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						log.Debugf("event: %s", ev)
						reportParse(ev.Name)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Errorf("watch: %s", err.Error())
				}
			}
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "logging verbosity")

	return cmd
}

func reportParse(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: %s\n", path, err)
		return
	}
	if _, err := parser.ParseSource(data); err != nil {
		fmt.Printf("%s: %s\n", path, err)
		return
	}
	fmt.Printf("%s: ok\n", path)
}
