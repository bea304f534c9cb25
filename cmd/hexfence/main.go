package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bsm/hexfence/cellstore"
	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
	"github.com/bsm/hexfence/internal/config"
	"github.com/bsm/hexfence/osmx"
)

var (
	rootCmd = &cobra.Command{
		Use:   "hexfence",
		Short: "Rasterise region boundaries onto the H3 grid.",
	}
	flagConfigDir string
	flagOSMPath   string
	flagSeedLat   float64
	flagSeedLng   float64
	flagStorePath string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", ".", "directory containing hexfence.yaml")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "trace, fill and export a region",
		Args:  cobra.NoArgs,
		Run:   buildCommand,
	}
	buildCmd.Flags().StringVar(&flagOSMPath, "osm", "", "OSM XML boundary relation (.osm or .osm.gz), default: built-in Daejeon boundary")
	buildCmd.Flags().Float64Var(&flagSeedLat, "seed-lat", geofence.DaejeonSeed.Lat, "latitude of a point inside the boundary")
	buildCmd.Flags().Float64Var(&flagSeedLng, "seed-lng", geofence.DaejeonSeed.Lng, "longitude of a point inside the boundary")
	rootCmd.AddCommand(buildCmd)

	lookupCmd := &cobra.Command{
		Use:   "lookup <lat> <lng>",
		Short: "check whether a coordinate lies within a built region",
		Args:  cobra.ExactArgs(2),
		Run:   lookupCommand,
	}
	lookupCmd.Flags().StringVar(&flagStorePath, "store", "", "cell store to query, default: output.store from config")
	rootCmd.AddCommand(lookupCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(flagConfigDir)
	fatalIf(err)

	logger := cfg.Logger()
	log.SetLevel(logger.GetLevel())
	log.SetFormatter(logger.Formatter)
	return cfg
}

func buildCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	fc := geofence.Daejeon()
	fc.Strict = cfg.Build.Strict
	fc.Logger = log.StandardLogger()

	osmPath := cfg.Build.OSM
	if flagOSMPath != "" {
		osmPath = flagOSMPath
	}
	if osmPath != "" {
		m, err := osmx.DecodeFile(osmPath)
		fatalIf(err)

		fc.Boundary, err = m.Boundary()
		fatalIf(err)
		fc.Seed = hexgrid.NewLatLng(flagSeedLat, flagSeedLng)

		log.WithFields(log.Fields{
			"name":     m.Name(),
			"vertices": len(fc.Boundary),
		}).Info("loaded boundary")
	}

	region, err := geofence.Run(hexgrid.NewH3(), fc, &geofence.Outputs{
		Boundary:     cfg.Output.Boundary,
		GeoJSON:      cfg.Output.GeoJSON,
		Store:        cfg.Output.Store,
		StoreOptions: cfg.Store.Options(),
	})
	fatalIf(err)

	fmt.Printf("cells: %d, compacted: %d, wall: %d\n", region.Cells.Len(), region.Compacted.Len(), region.WallSize)
}

func lookupCommand(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	lat, err := strconv.ParseFloat(args[0], 64)
	fatalIf(err)
	lng, err := strconv.ParseFloat(args[1], 64)
	fatalIf(err)

	name := cfg.Output.Store
	if flagStorePath != "" {
		name = flagStorePath
	}
	if name == "" {
		fatalIf(fmt.Errorf("no cell store configured, pass --store or set output.store"))
	}

	f, err := os.Open(name)
	fatalIf(err)
	defer f.Close()

	fi, err := f.Stat()
	fatalIf(err)

	store, err := cellstore.NewReader(f, fi.Size())
	fatalIf(err)

	grid := hexgrid.NewH3()
	ll := hexgrid.NewLatLng(lat, lng)
	ok, err := store.Contains(grid, ll)
	fatalIf(err)

	cell, err := grid.Cell(ll, store.Resolution())
	fatalIf(err)

	if ok {
		fmt.Printf("%s inside\n", cell)
	} else {
		fmt.Printf("%s outside\n", cell)
	}
}

func main() {
	rootCmd.SetHelpTemplate(`{{.UsageString}}`)
	fatalIf(rootCmd.Execute())
}

func fatalIf(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
