// SPDX-License-Identifier: EPL-2.0

package threepm_test

import (
	"fmt"

	"github.com/ik5/threepm"
	"github.com/ik5/threepm/internal/mp3test"
	"github.com/ik5/threepm/recompress"
)

// Example re-encodes a stream and unpacks it again.
func Example() {
	data := mp3test.Stream(
		mp3test.Frame{Mono: true, Granules: [2][2]mp3test.Granule{
			{{Pairs: []int{1, -1, 0, 1}}},
			{{Quads: []int{0, 1, 0, -1}}},
		}},
		mp3test.Frame{Mono: true},
	)

	cfg := recompress.DefaultConfig()
	res, err := threepm.Recompress(data, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	frames, err := threepm.Unpack(res.Data, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Frames, len(res.Data) < len(data))
	fmt.Println(frames[0].Data[0][0][:4], frames[0].Data[1][0][:4])

	// Output:
	// 2 true
	// [1 -1 0 1] [0 1 0 -1]
}
