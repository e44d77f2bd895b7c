package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/choria-io/fisk"
	"github.com/dustin/go-humanize"

	"github.com/gregoryfmartin/zipassets/archive"
)

type lsCommand struct {
	archive string
	digest  bool
}

func registerLsCommand(cli *fisk.Application) {
	cmd := &lsCommand{}

	ls := cli.Command("ls", "Lists the entries of an archive").Alias("list").Action(cmd.lsAction)
	ls.Arg("archive", "Archive to list").Required().ExistingFileVar(&cmd.archive)
	ls.Flag("digest", "Show the sha256 digest of each entry").UnNegatableBoolVar(&cmd.digest)
}

func (c *lsCommand) lsAction(_ *fisk.ParseContext) error {
	r, err := archive.Open(c.archive, archive.WithLogger(newLogger()))
	if err != nil {
		return err
	}
	defer r.Close()

	entries, err := r.Entries()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if c.digest {
		fmt.Fprintln(tw, "NAME\tMETHOD\tSIZE\tCOMPRESSED\tMODIFIED\tDIGEST")
	} else {
		fmt.Fprintln(tw, "NAME\tMETHOD\tSIZE\tCOMPRESSED\tMODIFIED")
	}

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s", e.Name, e.MethodName(),
			humanize.IBytes(e.Size), humanize.IBytes(e.CompressedSize),
			e.Modified.Format("2006-01-02 15:04"))

		if c.digest {
			d, err := r.Digest(e)
			if err != nil {
				fmt.Fprintf(tw, "\t%v\n", err)
				continue
			}
			fmt.Fprintf(tw, "\t%s", d)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
