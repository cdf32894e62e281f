package colour

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
)

// ErrNoPixels is returned when an image has nothing to sample.
var ErrNoPixels = errors.New("no pixels found in image")

// MaxClusters bounds the number of dominant colours requested.
const MaxClusters = 64

// Cluster is a dominant colour and the share of sampled pixels nearest to it.
type Cluster struct {
	Colour RGB     `json:"colour"`
	Pixels int     `json:"pixels"`
	Weight float64 `json:"weight"`
}

// ClusterOptions configures DominantColours.
type ClusterOptions struct {
	MaxIterations int
	Convergence   float64
	MaxSamples    int

	// Seed makes the k-means++ initialisation reproducible.
	Seed uint64

	// Backdrop flattens translucent pixels before clustering. Nil selects
	// White.
	Backdrop *RGB
}

// DefaultClusterOptions returns the settings used by the CLI.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		MaxIterations: 20,
		Convergence:   2.0,
		MaxSamples:    2000,
		Seed:          1,
	}
}

// DominantColours groups the sampled pixels of img into at most k clusters
// with k-means and returns them ordered by descending weight. Images with
// no more than k distinct colours are returned exactly.
func DominantColours(img image.Image, k int, opts ClusterOptions) ([]Cluster, error) {
	if img == nil {
		return nil, errors.New("image cannot be nil")
	}
	if k < 1 || k > MaxClusters {
		return nil, fmt.Errorf("colour count must be in 1..%d, got %d", MaxClusters, k)
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultClusterOptions().MaxIterations
	}
	if opts.MaxSamples < 1 {
		opts.MaxSamples = DefaultClusterOptions().MaxSamples
	}

	pixels := samplePixels(img, opts.MaxSamples, BackdropOrWhite(opts.Backdrop))
	if len(pixels) == 0 {
		return nil, ErrNoPixels
	}

	counts := make(map[RGB]int)
	for _, p := range pixels {
		counts[p]++
	}
	if len(counts) <= k {
		clusters := make([]Cluster, 0, len(counts))
		for c, n := range counts {
			clusters = append(clusters, Cluster{Colour: c, Pixels: n})
		}
		return finishClusters(clusters, len(pixels)), nil
	}

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	centroids, sizes := kmeans(points, k, opts, rng)

	clusters := make([]Cluster, 0, k)
	for i, c := range centroids {
		if sizes[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Colour: RGB{R: roundChannel(c.R), G: roundChannel(c.G), B: roundChannel(c.B)},
			Pixels: sizes[i],
		})
	}
	return finishClusters(clusters, len(pixels)), nil
}

func finishClusters(clusters []Cluster, total int) []Cluster {
	for i := range clusters {
		clusters[i].Weight = float64(clusters[i].Pixels) / float64(total)
	}
	slices.SortFunc(clusters, func(a, b Cluster) int {
		return cmp.Or(cmp.Compare(b.Pixels, a.Pixels), cmp.Compare(a.Colour.Hex(), b.Colour.Hex()))
	})
	return clusters
}

// point3D is a colour in continuous RGB space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels reads every pixel of small images and a regular grid of
// roughly maxSamples pixels from large ones, compositing each onto backdrop.
func samplePixels(img image.Image, maxSamples int, backdrop RGB) []RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, flatten(img.At(x, y), backdrop))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// flatten converts any colour.Color to an effective opaque RGB.
func flatten(c color.Color, backdrop RGB) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Composite(RGBA{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}, backdrop)
}

// kmeans clusters points into k groups and returns the centroids with the
// number of points assigned to each.
func kmeans(points []point3D, k int, opts ClusterOptions, rng *rand.Rand) ([]point3D, []int) {
	centroids := initialCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < opts.MaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if iter == 0 || assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculateCentroids(points, assignments, centroids)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < opts.Convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	sizes := make([]int, k)
	for _, p := range points {
		sizes[nearestCentroid(p, centroids)]++
	}
	return centroids, sizes
}

// initialCentroids seeds centroids with k-means++: each new centroid is
// drawn with probability proportional to its squared distance from the
// nearest existing one.
func initialCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}
		if total == 0 {
			break
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	// Fewer distinct seeds than k: pad with copies that will stay empty.
	for len(centroids) < k {
		centroids = append(centroids, centroids[len(centroids)-1])
	}
	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best, nearest := math.MaxFloat64, 0
	for i, c := range centroids {
		if d := p.distance(c); d < best {
			best, nearest = d, i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its points. An
// empty cluster keeps its previous position.
func recalculateCentroids(points []point3D, assignments []int, previous []point3D) []point3D {
	sums := make([]point3D, len(previous))
	counts := make([]int, len(previous))
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	next := make([]point3D, len(previous))
	for i := range next {
		if counts[i] == 0 {
			next[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		next[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return next
}
