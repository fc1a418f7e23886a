// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tgrid/tgrid/internal/config"
	"github.com/tgrid/tgrid/internal/model"
	"github.com/tgrid/tgrid/internal/view"
)

const (
	appName    = "tgrid"
	appVersion = "0.1.0"

	startupTimeout = 30 * time.Second
)

var (
	cfgFile  string
	refresh  int
	iniFile  string
	jsonFile string
	bucket   string
	prefix   string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "A terminal datagrid browser",
		Long:  `tgrid renders live data sources as navigable terminal grids with incremental repaint.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().IntVarP(&refresh, "refresh", "r", 5, "Refresh rate in seconds")
	rootCmd.Flags().StringVar(&iniFile, "ini", "", "INI file to browse")
	rootCmd.Flags().StringVar(&jsonFile, "json", "", "JSON document to browse")
	rootCmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to browse")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix filter")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if cmd.Flags().Changed("refresh") {
		cfg.RefreshRate = refresh
	}
	cfg.Validate()

	app := view.NewApp(cfg)
	app.AddDemo()

	if iniFile != "" {
		if err := addINIPage(app, iniFile); err != nil {
			return err
		}
	}
	if jsonFile != "" {
		if err := addJSONPage(app, jsonFile); err != nil {
			return err
		}
	}
	if bucket != "" {
		if err := addS3Page(app, bucket, prefix); err != nil {
			return err
		}
	}

	app.Init()
	return app.Run()
}

func addINIPage(app *view.App, path string) error {
	m, err := model.NewINI(path)
	if err != nil {
		return fmt.Errorf("open ini %q: %w", path, err)
	}
	t := app.AddGrid("ini", m, func(context.Context) error {
		return m.Reload()
	})
	t.Title().SetCaption(path)
	return nil
}

func addJSONPage(app *view.App, path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read json %q: %w", path, err)
	}
	m, err := model.NewJSON(doc)
	if err != nil {
		return fmt.Errorf("parse json %q: %w", path, err)
	}
	t := app.AddGrid("json", m, func(context.Context) error {
		fresh, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return m.Refresh(fresh)
	})
	t.Title().SetCaption(path)
	return nil
}

func addS3Page(app *view.App, bucket, prefix string) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	m, err := model.NewS3(ctx, bucket, prefix)
	if err != nil {
		return fmt.Errorf("connect to bucket %q: %w", bucket, err)
	}
	if err := m.Refresh(ctx); err != nil {
		return fmt.Errorf("list bucket %q: %w", bucket, err)
	}
	t := app.AddGrid("s3", m, m.Refresh)
	t.Title().SetCaption("s3://" + bucket + "/" + prefix)
	return nil
}
