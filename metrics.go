package terrain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	projCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_proj_cache_hits_total",
		Help: "The total number of hits on the PROJ transformation cache",
	})
	projCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_proj_cache_misses_total",
		Help: "The total number of misses on the PROJ transformation cache",
	})
	projCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_proj_cache_evictions_total",
		Help: "The total number of evictions from the PROJ transformation cache",
	})
	geoTIFFTileReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_geotiff_tile_reads_total",
		Help: "The total number of GeoTIFF tiles read and decoded",
	})
	geoTIFFEmptyTiles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_geotiff_empty_tiles_total",
		Help: "The total number of GeoTIFF tiles found to contain no data",
	})
)
