// Package movingai reads the map and scenario files of the MovingAI grid
// pathfinding benchmark sets.
//
// Map files (.map) carry a four-line header followed by the terrain rows:
//
//	type octile
//	height 5
//	width 7
//	map
//	.......
//	...@...
//
// Terrain runes follow grid.FromStrings: '.', 'G' and 'S' are open, '@',
// 'O', 'T' and 'W' are blocked. Octile maps become 8-connected grids.
//
// Scenario files (.scen) start with "version 1" and list one query per line:
//
//	bucket  map  width  height  start-x  start-y  goal-x  goal-y  optimal-length
//
// Fields are separated by tabs or spaces. The optimal length is the expected
// distance of the query; readers compare it at float32 precision because the
// files print it with eight decimals.
//
// Errors (sentinel):
//
//   - ErrBadHeader:     missing or malformed map header line.
//   - ErrBadDimensions: terrain rows disagree with the declared width/height.
//   - ErrBadVersion:    scenario file without a supported version line.
//   - ErrBadScenario:   scenario line with the wrong field count or a bad number.
//
// Terrain errors from package grid are wrapped and still match with errors.Is.
package movingai
