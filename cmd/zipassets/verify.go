package main

import (
	"fmt"

	"github.com/choria-io/fisk"

	"github.com/gregoryfmartin/zipassets"
)

type verifyCommand struct {
	archive    string
	extensions []string
}

func registerVerifyCommand(cli *fisk.Application) {
	cmd := &verifyCommand{}

	verify := cli.Command("verify", "Checks that every texture in an archive decodes").Action(cmd.verifyAction)
	verify.Arg("archive", "Archive to verify").Required().ExistingFileVar(&cmd.archive)
	verify.Flag("ext", "Entry suffix to load, may be repeated").PlaceHolder(".png").StringsVar(&cmd.extensions)
}

func (c *verifyCommand) verifyAction(_ *fisk.ParseContext) error {
	opts := []zipassets.LoadOption{zipassets.LoadWithLogger(newLogger())}
	if len(c.extensions) > 0 {
		opts = append(opts, zipassets.LoadWithExtensions(c.extensions...))
	}

	textures, report, err := zipassets.LoadTextures(c.archive, opts...)
	if err != nil {
		return err
	}
	defer textures.Destroy()

	for name, tex := range textures.All() {
		w, h := tex.Size()
		fmt.Printf("ok    %s (%s %dx%d)\n", name, tex.Format(), w, h)
	}
	for _, name := range report.Duplicates {
		fmt.Printf("dup   %s\n", name)
	}
	for _, diag := range report.Diagnostics {
		fmt.Printf("fail  %v\n", diag)
	}

	fmt.Printf("\n%d loaded, %d duplicate, %d failed, %d skipped\n",
		textures.Len(), len(report.Duplicates), len(report.Diagnostics), report.Filtered)

	if len(report.Diagnostics) > 0 {
		return fmt.Errorf("%d entries failed to load", len(report.Diagnostics))
	}

	return nil
}
