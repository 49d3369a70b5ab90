package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twpayne/go-terrain"
)

type config struct {
	settingsPath  string
	projectorName string
	verbose       bool
	zone          int
	south         bool

	log      *logrus.Logger
	settings terrain.Settings
}

func newRootCmd(c *config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "terrain",
		Short:         "Inspect elevation grids and convert coordinates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.log.SetLevel(logrus.DebugLevel)
			}
			c.settings = terrain.DefaultSettings()
			if c.settingsPath == "" {
				return nil
			}
			settings, err := terrain.LoadSettings(os.DirFS(filepath.Dir(c.settingsPath)), filepath.Base(c.settingsPath))
			if err != nil {
				return err
			}
			c.settings = settings
			c.log.WithFields(logrus.Fields{
				"path":    c.settingsPath,
				"utmZone": settings.UTMZone,
			}).Debug("loaded settings")
			return nil
		},
	}

	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.StringVar(&c.settingsPath, "config", os.Getenv("TERRAIN_CONFIG"), "settings file")
	persistentFlags.StringVar(&c.projectorName, "projector", "series", "coordinate conversions (series, proj, or geom)")
	persistentFlags.BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")

	utmCmd := &cobra.Command{
		Use:   "utm latitude longitude",
		Short: "Convert geographic coordinates to UTM",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runUTM,
	}
	utmCmd.Flags().IntVar(&c.zone, "zone", 0, "force UTM zone")

	latLonCmd := &cobra.Command{
		Use:   "latlon easting northing",
		Short: "Convert UTM coordinates to geographic",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runLatLon,
	}
	latLonCmd.Flags().IntVar(&c.zone, "zone", 0, "UTM zone, default from settings")
	latLonCmd.Flags().BoolVar(&c.south, "south", false, "southern hemisphere, default from settings")

	rootCmd.AddCommand(
		utmCmd,
		latLonCmd,
		&cobra.Command{
			Use:   "info file",
			Short: "Print the geometry and statistics of a GeoTIFF grid",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runInfo,
		},
		&cobra.Command{
			Use:   "slope file",
			Short: "Print slope and aspect statistics of a GeoTIFF grid",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runSlope,
		},
		&cobra.Command{
			Use:   "elevation file latitude longitude",
			Short: "Print the interpolated elevation at a geographic coordinate",
			Args:  cobra.ExactArgs(3),
			RunE:  c.runElevation,
		},
		&cobra.Command{
			Use:   "horizon file x y",
			Short: "Print horizon obstruction statistics seen from a point",
			Args:  cobra.ExactArgs(3),
			RunE:  c.runHorizon,
		},
	)

	return rootCmd
}

func (c *config) projector() (terrain.Projector, func(), error) {
	switch c.projectorName {
	case "series":
		return terrain.SeriesProjector{}, func() {}, nil
	case "proj":
		t, err := terrain.NewPROJTransformer()
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	case "geom":
		p, err := terrain.NewGeomProjector()
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%s: unknown projector", c.projectorName)
	}
}

func (c *config) runUTM(cmd *cobra.Command, args []string) error {
	lat, lon, err := parseFloats(args[0], args[1])
	if err != nil {
		return err
	}
	zone := c.zone
	if zone == 0 {
		zone = terrain.UTMZone(lat, lon)
	}
	projector, closeFunc, err := c.projector()
	if err != nil {
		return err
	}
	defer closeFunc()
	easting, northing, err := projector.LatLonToUTMForceZone(zone, lat, lon)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.3f %.3f %d\n", easting, northing, zone)
	return nil
}

func (c *config) runLatLon(cmd *cobra.Command, args []string) error {
	easting, northing, err := parseFloats(args[0], args[1])
	if err != nil {
		return err
	}
	zone := c.zone
	if zone == 0 {
		zone = c.settings.UTMZone
	}
	referenceLat := c.settings.StartLocation.Latitude
	if cmd.Flags().Changed("south") {
		referenceLat = 1
		if c.south {
			referenceLat = -1
		}
	}
	projector, closeFunc, err := c.projector()
	if err != nil {
		return err
	}
	defer closeFunc()
	lat, lon, err := projector.UTMToLatLon(zone, referenceLat, easting, northing)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.7f %.7f\n", lat, lon)
	return nil
}

func (c *config) runInfo(cmd *cobra.Command, args []string) error {
	g, _, err := c.readGrid(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	ll, ur := g.Header.Extent()
	fmt.Fprintf(cmd.OutOrStdout(), "size: %d rows × %d cols, cell size %g\n", g.Header.NRows, g.Header.NCols, g.Header.CellSize)
	fmt.Fprintf(cmd.OutOrStdout(), "extent: %.3f %.3f %.3f %.3f\n", ll.X, ll.Y, ur.X, ur.Y)
	latLonHeader := terrain.GeoExtentsFromUTMHeader(c.settings, g.Header)
	fmt.Fprintf(cmd.OutOrStdout(), "geographic extent: %.7f %.7f %.7f %.7f\n",
		latLonHeader.LLCorner.Latitude, latLonHeader.LLCorner.Longitude,
		latLonHeader.LLCorner.Latitude+float64(latLonHeader.NRows)*latLonHeader.DY,
		latLonHeader.LLCorner.Longitude+float64(latLonHeader.NCols)*latLonHeader.DX)
	return printStatistics(cmd, "elevation", g)
}

func (c *config) runSlope(cmd *cobra.Command, args []string) error {
	dtm, _, err := c.readGrid(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	slopeMap, aspectMap, err := terrain.SlopeAspectMaps(dtm)
	if err != nil {
		return err
	}
	if err := printStatistics(cmd, "slope", slopeMap); err != nil {
		return err
	}
	return printStatistics(cmd, "aspect", aspectMap)
}

func (c *config) runElevation(cmd *cobra.Command, args []string) error {
	lat, lon, err := parseFloats(args[1], args[2])
	if err != nil {
		return err
	}
	dem, utmZone, err := c.readGrid(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	projector, closeFunc, err := c.projector()
	if err != nil {
		return err
	}
	defer closeFunc()
	elevationService, err := terrain.NewElevationService(dem, c.settings,
		terrain.WithProjector(projector),
		terrain.WithUTMZone(utmZone),
	)
	if err != nil {
		return err
	}
	elevation, err := elevationService.Elevation(terrain.GeoPoint{Latitude: lat, Longitude: lon})
	if err != nil {
		return err
	}
	if elevation == dem.Header.NoData {
		return fmt.Errorf("%g %g: no elevation", lat, lon)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", elevation)
	return nil
}

func (c *config) runHorizon(cmd *cobra.Command, args []string) error {
	x, y, err := parseFloats(args[1], args[2])
	if err != nil {
		return err
	}
	dem, _, err := c.readGrid(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	z := dem.ValueXY(x, y)
	if z == dem.Header.NoData {
		return fmt.Errorf("%g %g: no elevation", x, y)
	}
	horizonMap, err := terrain.TopographicDistanceMap(terrain.Point3D{UTM: terrain.UTMPoint{X: x, Y: y}, Z: z}, dem)
	if err != nil {
		return err
	}
	return printStatistics(cmd, "obstruction", horizonMap)
}

// readGrid reads the GeoTIFF at path and returns its grid and UTM zone. The
// zone defaults to the settings' zone if the GeoTIFF does not declare one.
func (c *config) readGrid(ctx context.Context, path string) (*terrain.RasterGrid, int, error) {
	f, err := terrain.OpenGeoTIFF(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	fields := logrus.Fields{
		"path": path,
	}
	utmZone := c.settings.UTMZone
	if zone, south, ok := f.UTMZone(); ok {
		fields["utmZone"] = zone
		fields["south"] = south
		if zone != c.settings.UTMZone {
			c.log.WithFields(fields).Warn("grid and settings utm zones differ")
		}
		utmZone = zone
	}

	g, err := f.ReadGrid(ctx)
	if err != nil {
		return nil, 0, err
	}
	fields["rows"] = g.Header.NRows
	fields["cols"] = g.Header.NCols
	c.log.WithFields(fields).Debug("read grid")
	return g, utmZone, nil
}

func printStatistics(cmd *cobra.Command, name string, g *terrain.RasterGrid) error {
	switch statistics, err := terrain.GridStatistics(g); {
	case errors.Is(err, terrain.ErrNoData):
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no data\n", name)
		return nil
	case err != nil:
		return err
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: count %d min %g max %g mean %g stddev %g\n",
			name, statistics.Count, statistics.Minimum, statistics.Maximum, statistics.Mean, statistics.StandardDeviation)
		return nil
	}
}

func parseFloats(s1, s2 string) (float64, float64, error) {
	f1, err := strconv.ParseFloat(s1, 64)
	if err != nil {
		return 0, 0, err
	}
	f2, err := strconv.ParseFloat(s2, 64)
	if err != nil {
		return 0, 0, err
	}
	return f1, f2, nil
}

func run() error {
	c := &config{
		log: logrus.New(),
	}
	return newRootCmd(c).ExecuteContext(context.Background())
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
