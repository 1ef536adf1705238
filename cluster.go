package cubicperc

// Clusters maps a root index to the sites that belong to its component.
// It is an auxiliary, off-hot-path product used only by external
// presentation code (plotting); production histogramming never builds it.
type Clusters map[uint64][]Site

// EnumerateClusters walks the whole forest once and groups sites by root,
// keeping only components whose |size| is at least minSize. It uses
// FindConst throughout since the forest is shared and must not be mutated
// once generation has finished.
func EnumerateClusters(f *Forest, b uint8, minSize uint32) Clusters {
	clusters := make(Clusters)
	for idx := uint64(0); idx < uint64(f.Len()); idx++ {
		root := f.FindConst(idx)
		size := f.At(root).Size
		if uint32(abs32(size)) < minSize {
			continue
		}
		site := decode(idx, b)
		clusters[root] = append(clusters[root], site)
	}
	return clusters
}
