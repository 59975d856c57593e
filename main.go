package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MingxuanGame/SayobotAPI/base_service"
	cli2 "github.com/MingxuanGame/SayobotAPI/cli"
	"github.com/urfave/cli/v3"
)

func sidArg(cmd *cli.Command) (int, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("no beatmap id specified")
	}
	sid, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid beatmap id %q: %w", arg, err)
	}
	return sid, nil
}

var resourceTypeUsage = "preview_img, preview_audio, full_audio, full_cover_img, full, no_video, mini"

func main() {
	base_service.CreateLog()
	defer base_service.CloseLog()
	ctx := base_service.WithLogger(base_service.CreateSignalCancelContext())

	cmd := &cli.Command{
		Name:                  "sayobot",
		Usage:                 "Search, inspect and download osu! beatmaps from Sayobot",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Generate config file",
				Action: func(context.Context, *cli.Command) error {
					err := cli2.GenerateConfig()
					if err != nil {
						return err
					}
					fmt.Println("Config file generated successfully")
					return nil
				},
			},
			{
				Name:      "info",
				Usage:     "show a beatmapset and its difficulties",
				ArgsUsage: "<sid|bid|keyword>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "match", Aliases: []string{"m"}, Value: -1, Usage: "match mode of the key"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key := cmd.Args().First()
					if key == "" {
						return fmt.Errorf("no key specified")
					}
					return cli2.Info(ctx, os.Stdout, key, int(cmd.Int("match")))
				},
			},
			{
				Name:  "search",
				Usage: "search beatmapsets",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "search keyword"},
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "hot, new, packs or search"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: -1, Usage: "max results"},
					&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: -1, Usage: "start from the endid of a previous page"},
					&cli.StringFlag{Name: "subtype", Usage: "fields to match: title,artist,creator,version,tags,source"},
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "std,taiko,ctb,mania"},
					&cli.StringFlag{Name: "class", Aliases: []string{"c"}, Usage: "ranked,qualified,loved,pending,graveyard"},
					&cli.StringFlag{Name: "genre", Aliases: []string{"g"}, Usage: "genres, comma separated"},
					&cli.StringFlag{Name: "language", Aliases: []string{"e"}, Usage: "languages, comma separated"},
					&cli.StringFlag{Name: "star", Usage: "star rating range, e.g. 0~5"},
					&cli.StringFlag{Name: "ar", Usage: "approach rate range"},
					&cli.StringFlag{Name: "od", Usage: "overall difficulty range"},
					&cli.StringFlag{Name: "cs", Usage: "circle size range"},
					&cli.StringFlag{Name: "hp", Usage: "hp drain range"},
					&cli.StringFlag{Name: "bpm", Usage: "bpm range"},
					&cli.StringFlag{Name: "length", Usage: "length range in seconds"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return cli2.Search(ctx, os.Stdout, cli2.SearchOptions{
						Keyword:  cmd.String("keyword"),
						Type:     cmd.String("type"),
						Limit:    int(cmd.Int("limit")),
						Offset:   int(cmd.Int("offset")),
						SubType:  cmd.String("subtype"),
						Mode:     cmd.String("mode"),
						Class:    cmd.String("class"),
						Genre:    cmd.String("genre"),
						Language: cmd.String("language"),
						Star:     cmd.String("star"),
						AR:       cmd.String("ar"),
						OD:       cmd.String("od"),
						CS:       cmd.String("cs"),
						HP:       cmd.String("hp"),
						BPM:      cmd.String("bpm"),
						Length:   cmd.String("length"),
					})
				},
			},
			{
				Name:      "url",
				Usage:     "print the download url of a resource",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "full", Usage: resourceTypeUsage},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					sid, err := sidArg(cmd)
					if err != nil {
						return err
					}
					return cli2.ResolveURL(ctx, os.Stdout, sid, cmd.String("type"))
				},
			},
			{
				Name:      "download",
				Usage:     "download a resource",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "full", Usage: resourceTypeUsage},
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "existing directory to save into"},
					&cli.DurationFlag{Name: "timeout", Usage: "timeout of the whole download"},
					&cli.BoolFlag{Name: "no-record", Usage: "do not write the download history"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					sid, err := sidArg(cmd)
					if err != nil {
						return err
					}
					return cli2.Download(ctx, os.Stdout, sid, cmd.String("type"), cmd.String("path"), cmd.Duration("timeout"), cmd.Bool("no-record"))
				},
			},
			{
				Name:  "history",
				Usage: "list recorded downloads",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sid", Aliases: []string{"s"}, Usage: "only show this beatmap"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "max records, 0 for all"},
					&cli.BoolFlag{Name: "clear", Usage: "delete all records"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return cli2.History(os.Stdout, int(cmd.Int("sid")), int(cmd.Int("limit")), cmd.Bool("clear"))
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		base_service.CloseLog()
		os.Exit(1)
	}
}
