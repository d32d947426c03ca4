package cli

import (
	"fmt"
	"path/filepath"

	"github.com/svasisht/prepdash/internal/backup"
)

type BackupCmd struct {
	List    bool   `help:"List existing backups."`
	Restore string `help:"Restore from the given backup file." type:"path"`
}

func (c *BackupCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())

	switch {
	case c.List:
		infos, err := m.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No backups found.")
			return nil
		}
		fmt.Printf("Backups in %s:\n", m.Dir())
		for _, info := range infos {
			fmt.Printf("  %s  %s  %6d bytes\n",
				info.Timestamp.Format("2006-01-02 15:04"),
				filepath.Base(info.Path),
				info.Size)
		}
		return nil

	case c.Restore != "":
		if err := m.Restore(c.Restore); err != nil {
			return err
		}
		fmt.Printf("Restored data from %s.\n", filepath.Base(c.Restore))
		return nil

	default:
		path, err := m.Create()
		if err != nil {
			return err
		}
		fmt.Printf("Backup written to %s.\n", path)
		return nil
	}
}
