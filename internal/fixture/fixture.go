// Package fixture holds the worked junction-box example shared by tests.
package fixture

// JunctionBoxes is the 20-point, 3-D worked example, one "x,y,z" per line.
const JunctionBoxes = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

// Boxes returns JunctionBoxes as integer rows.
func Boxes() [][]int {
	return [][]int{
		{162, 817, 812}, {57, 618, 57}, {906, 360, 560}, {592, 479, 940},
		{352, 342, 300}, {466, 668, 158}, {542, 29, 236}, {431, 825, 988},
		{739, 650, 466}, {52, 470, 668}, {216, 146, 977}, {819, 987, 18},
		{117, 168, 530}, {805, 96, 715}, {346, 949, 466}, {970, 615, 88},
		{941, 993, 340}, {862, 61, 35}, {984, 92, 344}, {425, 690, 689},
	}
}

// TwoPairs returns four collinear points where 0–1 and 2–3 are mutually
// closest and the gap between 1 and 2 is the next shortest link.
func TwoPairs() [][]float64 {
	return [][]float64{{0, 0, 0}, {1, 0, 0}, {10, 0, 0}, {11, 0, 0}}
}
