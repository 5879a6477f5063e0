// SPDX-License-Identifier: EPL-2.0

package mp3

// Layer III Huffman codebooks (ISO/IEC 11172-3, Annex B, table B.7).
// Each codebook is ordered by code length so that the first match of a
// left-aligned peek is the decoded pair.

var hcodes1 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x1, 2, 1, 0}, {0x0, 3, 1, 1}, {0x1, 3, 0, 1},
}

var hcodes2 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x1, 3, 1, 1}, {0x2, 3, 0, 1}, {0x3, 3, 1, 0},
	{0x1, 5, 1, 2}, {0x2, 5, 2, 1}, {0x3, 5, 2, 0}, {0x0, 6, 2, 2},
	{0x1, 6, 0, 2},
}

var hcodes3 = []huffmanCode{
	{0x1, 2, 1, 1}, {0x2, 2, 0, 1}, {0x3, 2, 0, 0}, {0x1, 3, 1, 0},
	{0x1, 5, 1, 2}, {0x2, 5, 2, 1}, {0x3, 5, 2, 0}, {0x0, 6, 2, 2},
	{0x1, 6, 0, 2},
}

var hcodes5 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x1, 3, 1, 1}, {0x2, 3, 0, 1}, {0x3, 3, 1, 0},
	{0x1, 6, 3, 1}, {0x4, 6, 1, 2}, {0x5, 6, 2, 1}, {0x6, 6, 0, 2},
	{0x7, 6, 2, 0}, {0x1, 7, 3, 2}, {0x4, 7, 1, 3}, {0x5, 7, 0, 3},
	{0x6, 7, 3, 0}, {0x7, 7, 2, 2}, {0x0, 8, 3, 3}, {0x1, 8, 2, 3},
}

var hcodes6 = []huffmanCode{
	{0x2, 2, 1, 1}, {0x3, 3, 0, 1}, {0x6, 3, 1, 0}, {0x7, 3, 0, 0},
	{0x3, 4, 1, 2}, {0x4, 4, 2, 1}, {0x5, 4, 2, 0}, {0x2, 5, 1, 3},
	{0x3, 5, 3, 1}, {0x4, 5, 2, 2}, {0x5, 5, 0, 2}, {0x1, 6, 2, 3},
	{0x2, 6, 3, 2}, {0x3, 6, 3, 0}, {0x0, 7, 3, 3}, {0x1, 7, 0, 3},
}

var hcodes7 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x2, 3, 0, 1}, {0x3, 3, 1, 0}, {0x3, 4, 1, 1},
	{0x4, 5, 2, 1}, {0x7, 6, 1, 2}, {0xa, 6, 0, 2}, {0xb, 6, 2, 0},
	{0x5, 7, 1, 4}, {0x6, 7, 4, 1}, {0x7, 7, 4, 0}, {0xa, 7, 1, 3},
	{0xb, 7, 3, 1}, {0xc, 7, 3, 0}, {0xd, 7, 2, 2}, {0x3, 8, 1, 5},
	{0x4, 8, 5, 1}, {0x6, 8, 5, 0}, {0x8, 8, 2, 4}, {0x9, 8, 4, 2},
	{0x10, 8, 0, 4}, {0x11, 8, 2, 3}, {0x12, 8, 3, 2}, {0x13, 8, 0, 3},
	{0x2, 9, 3, 5}, {0x3, 9, 4, 4}, {0x4, 9, 2, 5}, {0x5, 9, 5, 2},
	{0xa, 9, 0, 5}, {0xb, 9, 3, 4}, {0xe, 9, 4, 3}, {0xf, 9, 3, 3},
	{0x0, 10, 5, 5}, {0x1, 10, 4, 5}, {0x2, 10, 5, 4}, {0x3, 10, 5, 3},
}

var hcodes8 = []huffmanCode{
	{0x1, 2, 1, 1}, {0x3, 2, 0, 0}, {0x4, 3, 0, 1}, {0x5, 3, 1, 0},
	{0x2, 4, 1, 2}, {0x3, 4, 2, 1}, {0x5, 6, 2, 2}, {0x6, 6, 0, 2},
	{0x7, 6, 2, 0}, {0x5, 7, 4, 1}, {0x3, 8, 1, 5}, {0x4, 8, 5, 1},
	{0x7, 8, 2, 4}, {0x8, 8, 4, 2}, {0x9, 8, 1, 4}, {0xc, 8, 0, 4},
	{0xd, 8, 4, 0}, {0xe, 8, 2, 3}, {0xf, 8, 3, 2}, {0x10, 8, 1, 3},
	{0x11, 8, 3, 1}, {0x12, 8, 0, 3}, {0x13, 8, 3, 0}, {0x1, 9, 5, 3},
	{0x3, 9, 2, 5}, {0x4, 9, 5, 2}, {0x5, 9, 0, 5}, {0xa, 9, 3, 4},
	{0xb, 9, 4, 3}, {0xc, 9, 5, 0}, {0xd, 9, 3, 3}, {0x1, 10, 4, 5},
	{0x4, 10, 3, 5}, {0x5, 10, 4, 4}, {0x0, 11, 5, 5}, {0x1, 11, 5, 4},
}

var hcodes9 = []huffmanCode{
	{0x4, 3, 1, 1}, {0x5, 3, 0, 1}, {0x6, 3, 1, 0}, {0x7, 3, 0, 0},
	{0x5, 4, 1, 2}, {0x6, 4, 2, 1}, {0x7, 4, 2, 0}, {0x5, 5, 1, 3},
	{0x6, 5, 3, 1}, {0x8, 5, 2, 2}, {0x9, 5, 0, 2}, {0x6, 6, 1, 4},
	{0x7, 6, 4, 1}, {0x8, 6, 2, 3}, {0x9, 6, 3, 2}, {0xe, 6, 0, 3},
	{0xf, 6, 3, 0}, {0x4, 7, 5, 1}, {0x5, 7, 3, 4}, {0x6, 7, 4, 3},
	{0x8, 7, 2, 4}, {0x9, 7, 4, 2}, {0xa, 7, 3, 3}, {0xb, 7, 4, 0},
	{0x1, 8, 3, 5}, {0x2, 8, 5, 3}, {0x4, 8, 4, 4}, {0x5, 8, 2, 5},
	{0x6, 8, 5, 2}, {0x7, 8, 1, 5}, {0xe, 8, 5, 0}, {0xf, 8, 0, 4},
	{0x0, 9, 5, 5}, {0x1, 9, 4, 5}, {0x6, 9, 5, 4}, {0x7, 9, 0, 5},
}

var hcodes10 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x2, 3, 0, 1}, {0x3, 3, 1, 0}, {0x3, 4, 1, 1},
	{0x8, 6, 1, 2}, {0x9, 6, 2, 1}, {0xa, 6, 0, 2}, {0xb, 6, 2, 0},
	{0xc, 7, 1, 3}, {0xd, 7, 3, 1}, {0xe, 7, 3, 0}, {0xf, 7, 2, 2},
	{0x7, 8, 1, 7}, {0x8, 8, 7, 1}, {0xc, 8, 1, 6}, {0xd, 8, 6, 1},
	{0xe, 8, 6, 0}, {0x12, 8, 1, 4}, {0x13, 8, 4, 1}, {0x14, 8, 4, 0},
	{0x15, 8, 2, 3}, {0x16, 8, 3, 2}, {0x17, 8, 0, 3}, {0x6, 9, 2, 7},
	{0x7, 9, 7, 2}, {0x9, 9, 7, 0}, {0xa, 9, 6, 2}, {0xc, 9, 0, 6},
	{0x12, 9, 3, 6}, {0x13, 9, 2, 6}, {0x15, 9, 1, 5}, {0x16, 9, 5, 1},
	{0x1e, 9, 0, 5}, {0x1f, 9, 5, 0}, {0x20, 9, 2, 4}, {0x21, 9, 4, 2},
	{0x22, 9, 3, 3}, {0x23, 9, 0, 4}, {0x3, 10, 4, 7}, {0x4, 10, 7, 4},
	{0x5, 10, 5, 6}, {0x6, 10, 6, 5}, {0x7, 10, 3, 7}, {0x8, 10, 7, 3},
	{0x9, 10, 4, 6}, {0xb, 10, 6, 3}, {0x10, 10, 6, 4}, {0x11, 10, 0, 7},
	{0x16, 10, 4, 5}, {0x17, 10, 3, 5}, {0x1a, 10, 5, 3}, {0x1b, 10, 4, 4},
	{0x28, 10, 2, 5}, {0x29, 10, 5, 2}, {0x2e, 10, 3, 4}, {0x2f, 10, 4, 3},
	{0x0, 11, 7, 7}, {0x1, 11, 6, 7}, {0x2, 11, 7, 6}, {0x3, 11, 5, 7},
	{0x4, 11, 7, 5}, {0x5, 11, 6, 6}, {0x14, 11, 5, 5}, {0x15, 11, 5, 4},
}

var hcodes11 = []huffmanCode{
	{0x3, 2, 0, 0}, {0x3, 3, 1, 1}, {0x4, 3, 0, 1}, {0x5, 3, 1, 0},
	{0x4, 4, 1, 2}, {0x7, 5, 2, 1}, {0xa, 5, 0, 2}, {0xb, 5, 2, 0},
	{0xa, 6, 1, 3}, {0xb, 6, 3, 1}, {0xd, 6, 2, 2}, {0x4, 7, 7, 1},
	{0x9, 7, 6, 2}, {0xb, 7, 1, 6}, {0xc, 7, 6, 1}, {0x12, 7, 2, 3},
	{0x13, 7, 3, 2}, {0x18, 7, 0, 3}, {0x19, 7, 3, 0}, {0x5, 8, 2, 7},
	{0x6, 8, 7, 2}, {0xa, 8, 1, 7}, {0xb, 8, 7, 0}, {0xc, 8, 3, 6},
	{0xd, 8, 6, 3}, {0xe, 8, 6, 0}, {0x11, 8, 1, 5}, {0x14, 8, 2, 6},
	{0x15, 8, 0, 6}, {0x1a, 8, 5, 1}, {0x1b, 8, 3, 4}, {0x1c, 8, 5, 0},
	{0x1e, 8, 2, 4}, {0x1f, 8, 4, 2}, {0x20, 8, 1, 4}, {0x21, 8, 4, 1},
	{0x22, 8, 0, 4}, {0x23, 8, 4, 0}, {0x5, 9, 3, 7}, {0x6, 9, 7, 3},
	{0x7, 9, 4, 6}, {0xe, 9, 6, 4}, {0xf, 9, 0, 7}, {0x1e, 9, 4, 4},
	{0x1f, 9, 2, 5}, {0x20, 9, 5, 2}, {0x21, 9, 0, 5}, {0x3a, 9, 4, 3},
	{0x3b, 9, 3, 3}, {0x0, 10, 7, 7}, {0x1, 10, 6, 7}, {0x2, 10, 7, 6},
	{0x3, 10, 7, 5}, {0x4, 10, 6, 6}, {0x5, 10, 4, 7}, {0x6, 10, 7, 4},
	{0x8, 10, 5, 6}, {0x9, 10, 6, 5}, {0x10, 10, 4, 5}, {0x11, 10, 5, 4},
	{0x12, 10, 3, 5}, {0x13, 10, 5, 3}, {0xe, 11, 5, 7}, {0xf, 11, 5, 5},
}

var hcodes12 = []huffmanCode{
	{0x5, 3, 1, 1}, {0x6, 3, 0, 1}, {0x7, 3, 1, 0}, {0x6, 4, 1, 2},
	{0x7, 4, 2, 1}, {0x9, 4, 0, 0}, {0x9, 5, 1, 3}, {0xa, 5, 3, 1},
	{0xb, 5, 2, 2}, {0x10, 5, 0, 2}, {0x11, 5, 2, 0}, {0xc, 6, 3, 3},
	{0xd, 6, 4, 1}, {0xe, 6, 2, 3}, {0xf, 6, 3, 2}, {0x11, 6, 3, 0},
	{0xa, 7, 2, 6}, {0xb, 7, 6, 2}, {0xc, 7, 6, 1}, {0x10, 7, 1, 5},
	{0x11, 7, 5, 1}, {0x12, 7, 3, 4}, {0x13, 7, 4, 3}, {0x15, 7, 2, 4},
	{0x16, 7, 4, 2}, {0x17, 7, 1, 4}, {0x20, 7, 4, 0}, {0x21, 7, 0, 3},
	{0x4, 8, 5, 6}, {0x5, 8, 3, 7}, {0x7, 8, 2, 7}, {0x8, 8, 7, 2},
	{0x9, 8, 4, 6}, {0xa, 8, 6, 4}, {0xb, 8, 1, 7}, {0xc, 8, 7, 1},
	{0xe, 8, 3, 6}, {0xf, 8, 6, 3}, {0x10, 8, 4, 5}, {0x11, 8, 5, 4},
	{0x12, 8, 4, 4}, {0x1a, 8, 1, 6}, {0x1b, 8, 6, 0}, {0x1c, 8, 3, 5},
	{0x1d, 8, 5, 3}, {0x1e, 8, 2, 5}, {0x1f, 8, 5, 2}, {0x28, 8, 5, 0},
	{0x29, 8, 0, 4}, {0x1, 9, 7, 6}, {0x2, 9, 5, 7}, {0x3, 9, 7, 5},
	{0x4, 9, 6, 6}, {0x5, 9, 4, 7}, {0x6, 9, 7, 4}, {0x7, 9, 6, 5},
	{0xc, 9, 7, 3}, {0xd, 9, 5, 5}, {0x1a, 9, 0, 7}, {0x1b, 9, 7, 0},
	{0x26, 9, 0, 6}, {0x27, 9, 0, 5}, {0x0, 10, 7, 7}, {0x1, 10, 6, 7},
}

var hcodes13 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x3, 3, 1, 0}, {0x4, 4, 1, 1}, {0x5, 4, 0, 1},
	{0xc, 6, 1, 2}, {0xd, 6, 2, 1}, {0xe, 6, 0, 2}, {0xf, 6, 2, 0},
	{0x10, 7, 4, 1}, {0x13, 7, 1, 3}, {0x14, 7, 3, 1}, {0x15, 7, 0, 3},
	{0x16, 7, 3, 0}, {0x17, 7, 2, 2}, {0x14, 8, 8, 1}, {0x1a, 8, 1, 5},
	{0x1b, 8, 5, 1}, {0x1f, 8, 1, 4}, {0x22, 8, 0, 4}, {0x23, 8, 4, 0},
	{0x24, 8, 2, 3}, {0x25, 8, 3, 2}, {0x18, 9, 1, 9}, {0x19, 9, 9, 1},
	{0x1d, 9, 2, 8}, {0x1e, 9, 8, 2}, {0x1f, 9, 1, 8}, {0x21, 9, 1, 7},
	{0x22, 9, 7, 1}, {0x2a, 9, 0, 8}, {0x2b, 9, 8, 0}, {0x2c, 9, 1, 6},
	{0x2d, 9, 6, 1}, {0x2e, 9, 0, 6}, {0x2f, 9, 6, 0}, {0x31, 9, 2, 5},
	{0x32, 9, 5, 2}, {0x33, 9, 0, 5}, {0x38, 9, 3, 4}, {0x39, 9, 4, 3},
	{0x3a, 9, 5, 0}, {0x3b, 9, 2, 4}, {0x3c, 9, 4, 2}, {0x3d, 9, 3, 3},
	{0x17, 10, 11, 2}, {0x18, 10, 1, 11}, {0x19, 10, 11, 1}, {0x1e, 10, 2, 10},
	{0x1f, 10, 10, 2}, {0x20, 10, 1, 10}, {0x21, 10, 10, 1}, {0x23, 10, 10, 0},
	{0x25, 10, 9, 3}, {0x28, 10, 2, 9}, {0x29, 10, 9, 2}, {0x2b, 10, 3, 8},
	{0x2c, 10, 8, 3}, {0x34, 10, 0, 9}, {0x35, 10, 9, 0}, {0x36, 10, 4, 8},
	{0x37, 10, 8, 4}, {0x38, 10, 7, 2}, {0x40, 10, 3, 7}, {0x41, 10, 2, 7},
	{0x46, 10, 5, 5}, {0x47, 10, 0, 7}, {0x48, 10, 7, 0}, {0x49, 10, 3, 6},
	{0x4a, 10, 6, 3}, {0x4b, 10, 4, 5}, {0x4c, 10, 5, 4}, {0x4d, 10, 2, 6},
	{0x4e, 10, 6, 2}, {0x4f, 10, 3, 5}, {0x60, 10, 5, 3}, {0x61, 10, 4, 4},
	{0x15, 11, 13, 1}, {0x1a, 11, 3, 12}, {0x1b, 11, 2, 12}, {0x1c, 11, 12, 2},
	{0x1d, 11, 5, 11}, {0x1f, 11, 1, 12}, {0x20, 11, 12, 1}, {0x22, 11, 12, 0},
	{0x25, 11, 3, 11}, {0x26, 11, 11, 3}, {0x28, 11, 2, 11}, {0x2a, 11, 10, 4},
	{0x2c, 11, 9, 4}, {0x34, 11, 0, 11}, {0x35, 11, 11, 0}, {0x36, 11, 9, 6},
	{0x37, 11, 4, 10}, {0x38, 11, 3, 10}, {0x39, 11, 10, 3}, {0x3a, 11, 5, 9},
	{0x3b, 11, 9, 5}, {0x44, 11, 0, 10}, {0x45, 11, 6, 8}, {0x48, 11, 8, 6},
	{0x49, 11, 4, 9}, {0x4c, 11, 3, 9}, {0x4d, 11, 5, 8}, {0x4e, 11, 8, 5},
	{0x4f, 11, 6, 7}, {0x54, 11, 5, 7}, {0x55, 11, 7, 5}, {0x5a, 11, 6, 6},
	{0x5b, 11, 4, 7}, {0x5c, 11, 7, 4}, {0x5d, 11, 5, 6}, {0x5e, 11, 6, 5},
	{0x5f, 11, 7, 3}, {0x72, 11, 4, 6}, {0x73, 11, 6, 4}, {0xe, 12, 1, 15},
	{0xf, 12, 15, 1}, {0x10, 12, 15, 0}, {0x14, 12, 14, 2}, {0x16, 12, 1, 14},
	{0x17, 12, 14, 1}, {0x1e, 12, 12, 6}, {0x1f, 12, 3, 13}, {0x21, 12, 2, 13},
	{0x22, 12, 13, 2}, {0x23, 12, 1, 13}, {0x24, 12, 11, 7}, {0x27, 12, 12, 3},
	{0x29, 12, 4, 11}, {0x2c, 12, 0, 13}, {0x2d, 12, 13, 0}, {0x2e, 12, 8, 10},
	{0x2f, 12, 10, 8}, {0x30, 12, 4, 12}, {0x31, 12, 12, 4}, {0x32, 12, 6, 11},
	{0x33, 12, 11, 6}, {0x3c, 12, 11, 5}, {0x3d, 12, 8, 9}, {0x42, 12, 9, 8},
	{0x43, 12, 0, 12}, {0x46, 12, 11, 4}, {0x47, 12, 6, 10}, {0x48, 12, 10, 6},
	{0x49, 12, 7, 9}, {0x4e, 12, 8, 8}, {0x4f, 12, 5, 10}, {0x52, 12, 10, 5},
	{0x53, 12, 6, 9}, {0x56, 12, 7, 8}, {0x57, 12, 8, 7}, {0x5a, 12, 7, 7},
	{0x5b, 12, 7, 6}, {0xe, 13, 3, 15}, {0x10, 13, 2, 15}, {0x11, 13, 15, 2},
	{0x13, 13, 0, 15}, {0x15, 13, 10, 11}, {0x17, 13, 4, 14}, {0x19, 13, 3, 14},
	{0x1a, 13, 11, 9}, {0x22, 13, 11, 10}, {0x23, 13, 14, 5}, {0x24, 13, 14, 4},
	{0x25, 13, 8, 12}, {0x26, 13, 6, 13}, {0x27, 13, 14, 3}, {0x2a, 13, 2, 14},
	{0x2b, 13, 0, 14}, {0x30, 13, 14, 0}, {0x31, 13, 5, 13}, {0x32, 13, 13, 5},
	{0x33, 13, 7, 12}, {0x34, 13, 12, 7}, {0x35, 13, 4, 13}, {0x36, 13, 8, 11},
	{0x37, 13, 11, 8}, {0x38, 13, 13, 4}, {0x39, 13, 9, 10}, {0x3a, 13, 10, 9},
	{0x3b, 13, 6, 12}, {0x40, 13, 13, 3}, {0x41, 13, 7, 11}, {0x4a, 13, 5, 12},
	{0x4b, 13, 12, 5}, {0x4c, 13, 9, 9}, {0x4d, 13, 7, 10}, {0x50, 13, 10, 7},
	{0x51, 13, 9, 7}, {0xb, 14, 15, 7}, {0xc, 14, 13, 10}, {0xf, 14, 6, 15},
	{0x10, 14, 14, 8}, {0x11, 14, 5, 15}, {0x12, 14, 9, 13}, {0x13, 14, 13, 9},
	{0x14, 14, 15, 5}, {0x15, 14, 14, 7}, {0x16, 14, 10, 12}, {0x17, 14, 11, 11},
	{0x18, 14, 4, 15}, {0x19, 14, 15, 4}, {0x1b, 14, 15, 3}, {0x1e, 14, 8, 13},
	{0x1f, 14, 13, 8}, {0x24, 14, 6, 14}, {0x25, 14, 9, 12}, {0x28, 14, 12, 9},
	{0x29, 14, 5, 14}, {0x2c, 14, 7, 13}, {0x2d, 14, 13, 7}, {0x30, 14, 12, 8},
	{0x31, 14, 13, 6}, {0x36, 14, 9, 11}, {0x37, 14, 10, 10}, {0x6, 15, 14, 12},
	{0x7, 15, 13, 13}, {0x9, 15, 11, 14}, {0xa, 15, 14, 11}, {0xb, 15, 9, 15},
	{0xc, 15, 15, 9}, {0xd, 15, 14, 10}, {0xe, 15, 11, 13}, {0xf, 15, 13, 11},
	{0x10, 15, 8, 15}, {0x11, 15, 15, 8}, {0x12, 15, 12, 12}, {0x14, 15, 8, 14},
	{0x1a, 15, 10, 13}, {0x1b, 15, 11, 12}, {0x1c, 15, 12, 11}, {0x1d, 15, 15, 6},
	{0x34, 15, 12, 10}, {0x35, 15, 14, 6}, {0x1, 16, 15, 15}, {0x2, 16, 14, 15},
	{0x3, 16, 13, 15}, {0x4, 16, 14, 14}, {0x5, 16, 12, 15}, {0x6, 16, 13, 14},
	{0x7, 16, 11, 15}, {0x8, 16, 15, 11}, {0x9, 16, 12, 14}, {0xa, 16, 13, 12},
	{0x10, 16, 15, 10}, {0x11, 16, 12, 13}, {0x26, 16, 10, 14}, {0x27, 16, 9, 14},
	{0x2a, 16, 7, 15}, {0x2b, 16, 7, 14}, {0x1, 17, 14, 13}, {0x16, 17, 10, 15},
	{0x17, 17, 14, 9}, {0x1, 18, 15, 13}, {0x0, 19, 15, 14}, {0x1, 19, 15, 12},
}

var hcodes15 = []huffmanCode{
	{0x5, 3, 1, 1}, {0x7, 3, 0, 0}, {0xc, 4, 0, 1}, {0xd, 4, 1, 0},
	{0xf, 5, 2, 2}, {0x10, 5, 1, 2}, {0x11, 5, 2, 1}, {0x12, 5, 0, 2},
	{0x13, 5, 2, 0}, {0x16, 6, 4, 1}, {0x18, 6, 2, 3}, {0x19, 6, 3, 2},
	{0x1b, 6, 1, 3}, {0x1c, 6, 3, 1}, {0x1d, 6, 3, 0}, {0x20, 7, 6, 1},
	{0x22, 7, 2, 5}, {0x23, 7, 5, 2}, {0x24, 7, 1, 5}, {0x25, 7, 5, 1},
	{0x27, 7, 3, 4}, {0x28, 7, 4, 3}, {0x29, 7, 2, 4}, {0x2a, 7, 4, 2},
	{0x2b, 7, 3, 3}, {0x2e, 7, 1, 4}, {0x2f, 7, 0, 4}, {0x34, 7, 4, 0},
	{0x35, 7, 0, 3}, {0x22, 8, 9, 1}, {0x28, 8, 2, 8}, {0x29, 8, 8, 2},
	{0x2a, 8, 1, 8}, {0x2b, 8, 8, 1}, {0x30, 8, 2, 7}, {0x31, 8, 7, 2},
	{0x32, 8, 6, 4}, {0x33, 8, 1, 7}, {0x34, 8, 5, 5}, {0x35, 8, 7, 1},
	{0x37, 8, 3, 6}, {0x38, 8, 6, 3}, {0x39, 8, 4, 5}, {0x3a, 8, 5, 4},
	{0x3b, 8, 2, 6}, {0x3c, 8, 6, 2}, {0x3d, 8, 1, 6}, {0x3f, 8, 3, 5},
	{0x42, 8, 5, 3}, {0x43, 8, 4, 4}, {0x4c, 8, 0, 5}, {0x4d, 8, 5, 0},
	{0x1e, 9, 12, 2}, {0x25, 9, 11, 3}, {0x28, 9, 11, 2}, {0x2a, 9, 11, 1},
	{0x2f, 9, 10, 3}, {0x30, 9, 5, 9}, {0x31, 9, 9, 5}, {0x32, 9, 2, 10},
	{0x33, 9, 10, 2}, {0x34, 9, 1, 10}, {0x35, 9, 10, 1}, {0x37, 9, 6, 8},
	{0x38, 9, 8, 6}, {0x39, 9, 4, 9}, {0x3a, 9, 9, 4}, {0x3b, 9, 3, 9},
	{0x3c, 9, 9, 3}, {0x3e, 9, 5, 8}, {0x3f, 9, 8, 5}, {0x40, 9, 2, 9},
	{0x41, 9, 6, 7}, {0x42, 9, 7, 6}, {0x43, 9, 9, 2}, {0x46, 9, 1, 9},
	{0x47, 9, 9, 0}, {0x48, 9, 4, 8}, {0x49, 9, 8, 4}, {0x4a, 9, 5, 7},
	{0x4b, 9, 7, 5}, {0x4c, 9, 3, 8}, {0x4d, 9, 8, 3}, {0x4e, 9, 6, 6},
	{0x4f, 9, 4, 7}, {0x58, 9, 7, 4}, {0x59, 9, 0, 8}, {0x5a, 9, 8, 0},
	{0x5b, 9, 5, 6}, {0x5c, 9, 6, 5}, {0x5d, 9, 3, 7}, {0x5e, 9, 7, 3},
	{0x5f, 9, 4, 6}, {0x6c, 9, 0, 7}, {0x6d, 9, 7, 0}, {0x7c, 9, 0, 6},
	{0x7d, 9, 6, 0}, {0x22, 10, 13, 4}, {0x26, 10, 13, 3}, {0x27, 10, 13, 2},
	{0x29, 10, 1, 13}, {0x2a, 10, 7, 11}, {0x2b, 10, 11, 7}, {0x2c, 10, 13, 1},
	{0x2e, 10, 12, 5}, {0x2f, 10, 8, 10}, {0x30, 10, 10, 8}, {0x31, 10, 4, 12},
	{0x32, 10, 12, 4}, {0x33, 10, 6, 11}, {0x34, 10, 11, 6}, {0x36, 10, 3, 12},
	{0x37, 10, 12, 3}, {0x38, 10, 7, 10}, {0x39, 10, 10, 7}, {0x3a, 10, 10, 6},
	{0x3e, 10, 2, 12}, {0x3f, 10, 5, 11}, {0x40, 10, 11, 5}, {0x41, 10, 1, 12},
	{0x42, 10, 8, 9}, {0x43, 10, 9, 8}, {0x44, 10, 12, 1}, {0x45, 10, 4, 11},
	{0x46, 10, 11, 4}, {0x47, 10, 6, 10}, {0x48, 10, 3, 11}, {0x49, 10, 7, 9},
	{0x4c, 10, 9, 7}, {0x4d, 10, 8, 8}, {0x4e, 10, 2, 11}, {0x4f, 10, 5, 10},
	{0x52, 10, 10, 5}, {0x53, 10, 1, 11}, {0x56, 10, 11, 0}, {0x57, 10, 6, 9},
	{0x58, 10, 9, 6}, {0x59, 10, 4, 10}, {0x5a, 10, 10, 4}, {0x5b, 10, 7, 8},
	{0x5c, 10, 8, 7}, {0x5d, 10, 3, 10}, {0x6c, 10, 0, 10}, {0x6d, 10, 10, 0},
	{0x7a, 10, 7, 7}, {0x7b, 10, 0, 9}, {0x10, 11, 12, 11}, {0x11, 11, 15, 6},
	{0x14, 11, 15, 5}, {0x15, 11, 7, 14}, {0x16, 11, 14, 7}, {0x17, 11, 10, 12},
	{0x18, 11, 12, 10}, {0x19, 11, 11, 11}, {0x1b, 11, 4, 15}, {0x1c, 11, 15, 4},
	{0x1d, 11, 3, 15}, {0x1e, 11, 15, 3}, {0x1f, 11, 13, 8}, {0x20, 11, 14, 6},
	{0x21, 11, 2, 15}, {0x22, 11, 15, 2}, {0x24, 11, 1, 15}, {0x25, 11, 15, 1},
	{0x26, 11, 9, 12}, {0x27, 11, 12, 9}, {0x28, 11, 5, 14}, {0x29, 11, 10, 11},
	{0x2a, 11, 11, 10}, {0x2b, 11, 14, 5}, {0x2c, 11, 7, 13}, {0x2d, 11, 13, 7},
	{0x2e, 11, 4, 14}, {0x2f, 11, 14, 4}, {0x30, 11, 8, 12}, {0x31, 11, 12, 8},
	{0x32, 11, 3, 14}, {0x33, 11, 6, 13}, {0x34, 11, 13, 6}, {0x35, 11, 14, 3},
	{0x36, 11, 9, 11}, {0x37, 11, 11, 9}, {0x38, 11, 2, 14}, {0x39, 11, 10, 10},
	{0x3a, 11, 14, 2}, {0x3b, 11, 1, 14}, {0x3c, 11, 14, 1}, {0x3e, 11, 5, 13},
	{0x3f, 11, 13, 5}, {0x40, 11, 7, 12}, {0x41, 11, 12, 7}, {0x42, 11, 4, 13},
	{0x43, 11, 8, 11}, {0x46, 11, 11, 8}, {0x47, 11, 9, 10}, {0x48, 11, 10, 9},
	{0x49, 11, 6, 12}, {0x4a, 11, 12, 6}, {0x4b, 11, 3, 13}, {0x50, 11, 2, 13},
	{0x51, 11, 0, 13}, {0x5a, 11, 5, 12}, {0x5b, 11, 13, 0}, {0x6a, 11, 9, 9},
	{0x6b, 11, 0, 12}, {0x76, 11, 12, 0}, {0x77, 11, 0, 11}, {0x2, 12, 14, 14},
	{0x6, 12, 15, 11}, {0x8, 12, 13, 13}, {0x9, 12, 10, 15}, {0xa, 12, 15, 10},
	{0xb, 12, 11, 14}, {0xc, 12, 14, 11}, {0xd, 12, 12, 13}, {0xe, 12, 13, 12},
	{0xf, 12, 9, 15}, {0x10, 12, 15, 9}, {0x11, 12, 14, 10}, {0x12, 12, 11, 13},
	{0x13, 12, 13, 11}, {0x14, 12, 8, 15}, {0x15, 12, 15, 8}, {0x16, 12, 12, 12},
	{0x17, 12, 9, 14}, {0x18, 12, 14, 9}, {0x19, 12, 7, 15}, {0x1a, 12, 15, 7},
	{0x1b, 12, 10, 13}, {0x1c, 12, 13, 10}, {0x1d, 12, 11, 12}, {0x1e, 12, 6, 15},
	{0x24, 12, 8, 14}, {0x25, 12, 14, 8}, {0x26, 12, 5, 15}, {0x27, 12, 9, 13},
	{0x34, 12, 13, 9}, {0x35, 12, 8, 13}, {0x46, 12, 6, 14}, {0x47, 12, 15, 0},
	{0x7a, 12, 0, 14}, {0x7b, 12, 14, 0}, {0x0, 13, 15, 15}, {0x1, 13, 14, 15},
	{0x2, 13, 15, 14}, {0x3, 13, 13, 15}, {0x6, 13, 15, 13}, {0x7, 13, 12, 15},
	{0x8, 13, 15, 12}, {0x9, 13, 13, 14}, {0xa, 13, 14, 13}, {0xb, 13, 11, 15},
	{0xe, 13, 12, 14}, {0xf, 13, 14, 12}, {0x3e, 13, 10, 14}, {0x3f, 13, 0, 15},
}

var hcodes16 = []huffmanCode{
	{0x1, 1, 0, 0}, {0x3, 3, 1, 0}, {0x4, 4, 1, 1}, {0x5, 4, 0, 1},
	{0xc, 6, 1, 2}, {0xd, 6, 2, 1}, {0xe, 6, 0, 2}, {0xf, 6, 2, 0},
	{0x14, 7, 1, 3}, {0x15, 7, 3, 1}, {0x17, 7, 2, 2}, {0x3, 8, 15, 15},
	{0x7, 8, 15, 2}, {0x9, 8, 1, 15}, {0xa, 8, 15, 1}, {0x1e, 8, 5, 1},
	{0x23, 8, 1, 4}, {0x24, 8, 4, 1}, {0x26, 8, 2, 3}, {0x27, 8, 3, 2},
	{0x2c, 8, 0, 3}, {0x2d, 8, 3, 0}, {0x9, 9, 4, 15}, {0xa, 9, 15, 4},
	{0xb, 9, 15, 3}, {0xc, 9, 15, 0}, {0x10, 9, 2, 15}, {0x11, 9, 0, 15},
	{0x2f, 9, 1, 7}, {0x30, 9, 7, 1}, {0x34, 9, 6, 2}, {0x35, 9, 1, 6},
	{0x36, 9, 6, 1}, {0x38, 9, 5, 3}, {0x3a, 9, 2, 5}, {0x3b, 9, 5, 2},
	{0x3e, 9, 1, 5}, {0x3f, 9, 0, 5}, {0x40, 9, 3, 4}, {0x41, 9, 4, 3},
	{0x42, 9, 5, 0}, {0x43, 9, 2, 4}, {0x44, 9, 4, 2}, {0x45, 9, 3, 3},
	{0x4a, 9, 0, 4}, {0x4b, 9, 4, 0}, {0x4, 10, 10, 15}, {0x7, 10, 8, 15},
	{0x8, 10, 7, 15}, {0x9, 10, 15, 7}, {0xa, 10, 6, 15}, {0xb, 10, 15, 6},
	{0x10, 10, 5, 15}, {0x11, 10, 15, 5}, {0x1a, 10, 3, 15}, {0x43, 10, 10, 2},
	{0x44, 10, 1, 10}, {0x48, 10, 2, 9}, {0x49, 10, 9, 2}, {0x4b, 10, 1, 9},
	{0x4c, 10, 9, 1}, {0x51, 10, 8, 2}, {0x53, 10, 1, 8}, {0x54, 10, 8, 1},
	{0x55, 10, 8, 0}, {0x57, 10, 3, 7}, {0x58, 10, 7, 3}, {0x5a, 10, 2, 7},
	{0x5b, 10, 7, 2}, {0x5d, 10, 0, 7}, {0x62, 10, 7, 0}, {0x63, 10, 3, 6},
	{0x64, 10, 6, 3}, {0x65, 10, 4, 5}, {0x66, 10, 5, 4}, {0x67, 10, 2, 6},
	{0x6e, 10, 0, 6}, {0x6f, 10, 6, 0}, {0x72, 10, 3, 5}, {0x73, 10, 4, 4},
	{0x0, 11, 14, 15}, {0x1, 11, 15, 14}, {0x2, 11, 13, 15}, {0x3, 11, 15, 13},
	{0x4, 11, 12, 15}, {0x5, 11, 15, 12}, {0x6, 11, 11, 15}, {0x7, 11, 15, 11},
	{0xa, 11, 15, 10}, {0xb, 11, 9, 15}, {0xc, 11, 15, 9}, {0xd, 11, 15, 8},
	{0x66, 11, 14, 2}, {0x6b, 11, 1, 13}, {0x6e, 11, 2, 12}, {0x73, 11, 11, 3},
	{0x75, 11, 2, 11}, {0x76, 11, 11, 2}, {0x77, 11, 1, 11}, {0x78, 11, 11, 1},
	{0x7d, 11, 10, 3}, {0x7f, 11, 2, 10}, {0x81, 11, 10, 1}, {0x83, 11, 9, 4},
	{0x85, 11, 6, 7}, {0x8a, 11, 0, 10}, {0x8b, 11, 10, 0}, {0x8c, 11, 3, 9},
	{0x8d, 11, 9, 3}, {0x8e, 11, 5, 8}, {0x8f, 11, 8, 5}, {0x94, 11, 7, 6},
	{0x95, 11, 0, 9}, {0x9a, 11, 9, 0}, {0x9b, 11, 4, 8}, {0x9c, 11, 8, 4},
	{0x9d, 11, 7, 5}, {0x9e, 11, 3, 8}, {0x9f, 11, 8, 3}, {0xa0, 11, 6, 6},
	{0xa1, 11, 2, 8}, {0xa4, 11, 4, 7}, {0xa5, 11, 7, 4}, {0xac, 11, 0, 8},
	{0xad, 11, 5, 6}, {0xb2, 11, 6, 5}, {0xb3, 11, 4, 6}, {0xb8, 11, 6, 4},
	{0xb9, 11, 5, 5}, {0xbb, 12, 14, 3}, {0xc3, 12, 0, 13}, {0xc7, 12, 3, 12},
	{0xc9, 12, 1, 12}, {0xca, 12, 12, 0}, {0xce, 12, 2, 14}, {0xcf, 12, 1, 14},
	{0xd0, 12, 13, 3}, {0xd1, 12, 2, 13}, {0xd2, 12, 13, 2}, {0xd3, 12, 13, 1},
	{0xd4, 12, 3, 11}, {0xd8, 12, 12, 4}, {0xd9, 12, 6, 11}, {0xda, 12, 12, 3},
	{0xdb, 12, 10, 7}, {0xde, 12, 12, 2}, {0xdf, 12, 11, 5}, {0xe0, 12, 12, 1},
	{0xe1, 12, 0, 12}, {0xe2, 12, 4, 11}, {0xe3, 12, 11, 4}, {0xe4, 12, 6, 10},
	{0xe5, 12, 10, 6}, {0xe8, 12, 5, 10}, {0xe9, 12, 10, 5}, {0xf2, 12, 0, 11},
	{0xf3, 12, 11, 0}, {0xf4, 12, 6, 9}, {0xf5, 12, 9, 6}, {0xf6, 12, 4, 10},
	{0xf7, 12, 10, 4}, {0xf8, 12, 7, 8}, {0xf9, 12, 8, 7}, {0xfc, 12, 3, 10},
	{0xfd, 12, 5, 9}, {0x100, 12, 9, 5}, {0x101, 12, 6, 8}, {0x104, 12, 8, 6},
	{0x105, 12, 7, 7}, {0x108, 12, 4, 9}, {0x109, 12, 5, 7}, {0xdf, 13, 11, 13},
	{0x160, 13, 9, 14}, {0x166, 13, 14, 6}, {0x167, 13, 9, 12}, {0x16a, 13, 4, 14},
	{0x16c, 13, 12, 8}, {0x16d, 13, 3, 14}, {0x16e, 13, 6, 13}, {0x171, 13, 14, 1},
	{0x172, 13, 13, 4}, {0x174, 13, 7, 11}, {0x178, 13, 0, 14}, {0x179, 13, 14, 0},
	{0x17a, 13, 5, 13}, {0x17b, 13, 13, 5}, {0x17c, 13, 7, 12}, {0x17d, 13, 12, 7},
	{0x17e, 13, 4, 13}, {0x17f, 13, 8, 11}, {0x180, 13, 9, 10}, {0x181, 13, 6, 12},
	{0x182, 13, 12, 6}, {0x183, 13, 3, 13}, {0x184, 13, 5, 12}, {0x185, 13, 12, 5},
	{0x188, 13, 8, 10}, {0x189, 13, 10, 8}, {0x18a, 13, 9, 9}, {0x18b, 13, 4, 12},
	{0x18c, 13, 11, 6}, {0x18d, 13, 7, 10}, {0x190, 13, 5, 11}, {0x191, 13, 8, 9},
	{0x196, 13, 9, 8}, {0x197, 13, 7, 9}, {0x1aa, 13, 9, 7}, {0x1ab, 13, 8, 8},
	{0x1b2, 14, 14, 14}, {0x1b4, 14, 11, 14}, {0x1b5, 14, 12, 13}, {0x1b7, 14, 10, 14},
	{0x1b8, 14, 12, 12}, {0x1bb, 14, 12, 10}, {0x1bd, 14, 5, 14}, {0x2c2, 14, 11, 12},
	{0x2c3, 14, 12, 11}, {0x2c4, 14, 8, 14}, {0x2c5, 14, 14, 8}, {0x2c6, 14, 9, 13},
	{0x2c7, 14, 14, 7}, {0x2c8, 14, 11, 11}, {0x2c9, 14, 8, 13}, {0x2ca, 14, 13, 8},
	{0x2cb, 14, 6, 14}, {0x2d0, 14, 10, 11}, {0x2d1, 14, 11, 10}, {0x2d2, 14, 14, 5},
	{0x2d3, 14, 13, 7}, {0x2d6, 14, 14, 4}, {0x2d7, 14, 8, 12}, {0x2de, 14, 13, 6},
	{0x2df, 14, 9, 11}, {0x2e0, 14, 11, 9}, {0x2e1, 14, 10, 10}, {0x2e6, 14, 11, 8},
	{0x2e7, 14, 10, 9}, {0x2ea, 14, 11, 7}, {0x2eb, 14, 13, 0}, {0x361, 15, 13, 14},
	{0x362, 15, 14, 9}, {0x366, 15, 14, 13}, {0x367, 15, 14, 11}, {0x36c, 15, 13, 12},
	{0x36d, 15, 13, 11}, {0x372, 15, 10, 13}, {0x373, 15, 13, 10}, {0x374, 15, 7, 14},
	{0x375, 15, 10, 12}, {0x378, 15, 12, 9}, {0x379, 15, 7, 13}, {0x6c0, 16, 12, 14},
	{0x6c6, 16, 14, 10}, {0x6c7, 16, 13, 9}, {0xd82, 17, 14, 12}, {0xd83, 17, 13, 13},
}

var hcodes24 = []huffmanCode{
	{0x3, 4, 15, 15}, {0xc, 4, 1, 1}, {0xd, 4, 0, 1}, {0xe, 4, 1, 0},
	{0xf, 4, 0, 0}, {0x15, 5, 1, 2}, {0x16, 5, 2, 1}, {0x26, 6, 1, 3},
	{0x27, 6, 3, 1}, {0x29, 6, 2, 2}, {0x2e, 6, 0, 2}, {0x2f, 6, 2, 0},
	{0x4, 7, 15, 10}, {0x6, 7, 15, 9}, {0x7, 7, 15, 8}, {0x9, 7, 15, 7},
	{0xa, 7, 6, 15}, {0xb, 7, 15, 6}, {0xc, 7, 5, 15}, {0xd, 7, 15, 5},
	{0xe, 7, 4, 15}, {0xf, 7, 15, 4}, {0x10, 7, 3, 15}, {0x11, 7, 15, 3},
	{0x12, 7, 2, 15}, {0x13, 7, 15, 2}, {0x14, 7, 15, 1}, {0x42, 7, 5, 1},
	{0x44, 7, 2, 4}, {0x45, 7, 4, 2}, {0x46, 7, 3, 3}, {0x47, 7, 1, 4},
	{0x48, 7, 4, 1}, {0x4a, 7, 2, 3}, {0x4b, 7, 3, 2}, {0x50, 7, 0, 3},
	{0x51, 7, 3, 0}, {0x0, 8, 14, 15}, {0x1, 8, 15, 14}, {0x2, 8, 13, 15},
	{0x3, 8, 15, 13}, {0x4, 8, 12, 15}, {0x5, 8, 15, 12}, {0x6, 8, 11, 15},
	{0x7, 8, 15, 11}, {0xa, 8, 10, 15}, {0xb, 8, 9, 15}, {0x10, 8, 8, 15},
	{0x11, 8, 7, 15}, {0x2a, 8, 1, 15}, {0x2b, 8, 15, 0}, {0x6d, 8, 7, 3},
	{0x6f, 8, 7, 2}, {0x70, 8, 4, 6}, {0x71, 8, 6, 4}, {0x72, 8, 5, 5},
	{0x73, 8, 7, 1}, {0x74, 8, 3, 6}, {0x75, 8, 6, 3}, {0x76, 8, 4, 5},
	{0x77, 8, 5, 4}, {0x78, 8, 2, 6}, {0x79, 8, 6, 2}, {0x7a, 8, 1, 6},
	{0x7b, 8, 6, 1}, {0x7d, 8, 3, 5}, {0x7e, 8, 5, 3}, {0x7f, 8, 4, 4},
	{0x80, 8, 2, 5}, {0x81, 8, 5, 2}, {0x82, 8, 1, 5}, {0x86, 8, 3, 4},
	{0x87, 8, 4, 3}, {0x92, 8, 0, 4}, {0x93, 8, 4, 0}, {0x58, 9, 0, 15},
	{0xa4, 9, 11, 4}, {0xa8, 9, 11, 3}, {0xa9, 9, 8, 8}, {0xab, 9, 11, 2},
	{0xae, 9, 9, 6}, {0xaf, 9, 10, 4}, {0xb1, 9, 8, 7}, {0xb2, 9, 3, 10},
	{0xb3, 9, 10, 3}, {0xb4, 9, 5, 9}, {0xb5, 9, 9, 5}, {0xb6, 9, 2, 10},
	{0xb7, 9, 10, 2}, {0xb8, 9, 10, 1}, {0xb9, 9, 6, 8}, {0xba, 9, 8, 6},
	{0xbb, 9, 7, 7}, {0xbc, 9, 4, 9}, {0xbd, 9, 9, 4}, {0xbe, 9, 3, 9},
	{0xbf, 9, 9, 3}, {0xc0, 9, 5, 8}, {0xc1, 9, 8, 5}, {0xc2, 9, 2, 9},
	{0xc3, 9, 6, 7}, {0xc4, 9, 7, 6}, {0xc5, 9, 9, 2}, {0xc6, 9, 1, 9},
	{0xc7, 9, 9, 1}, {0xc8, 9, 4, 8}, {0xc9, 9, 8, 4}, {0xca, 9, 5, 7},
	{0xcb, 9, 7, 5}, {0xcc, 9, 3, 8}, {0xcd, 9, 8, 3}, {0xce, 9, 6, 6},
	{0xcf, 9, 2, 8}, {0xd0, 9, 8, 2}, {0xd1, 9, 1, 8}, {0xd2, 9, 4, 7},
	{0xd3, 9, 7, 4}, {0xd4, 9, 8, 1}, {0xd6, 9, 5, 6}, {0xd7, 9, 6, 5},
	{0xd8, 9, 1, 7}, {0xdc, 9, 3, 7}, {0xdd, 9, 2, 7}, {0xf8, 9, 0, 6},
	{0xf9, 9, 6, 0}, {0x106, 9, 0, 5}, {0x107, 9, 5, 0}, {0x103, 10, 14, 6},
	{0x105, 10, 12, 9}, {0x106, 10, 5, 14}, {0x107, 10, 11, 10}, {0x108, 10, 14, 5},
	{0x10a, 10, 13, 7}, {0x10b, 10, 14, 4}, {0x10c, 10, 8, 12}, {0x10d, 10, 12, 8},
	{0x10f, 10, 3, 14}, {0x110, 10, 6, 13}, {0x111, 10, 13, 6}, {0x112, 10, 14, 3},
	{0x113, 10, 9, 11}, {0x114, 10, 11, 9}, {0x115, 10, 10, 10}, {0x116, 10, 14, 2},
	{0x117, 10, 1, 14}, {0x118, 10, 14, 1}, {0x119, 10, 5, 13}, {0x11a, 10, 13, 5},
	{0x11b, 10, 7, 12}, {0x11c, 10, 12, 7}, {0x11d, 10, 4, 13}, {0x11e, 10, 8, 11},
	{0x11f, 10, 11, 8}, {0x120, 10, 13, 4}, {0x121, 10, 9, 10}, {0x122, 10, 10, 9},
	{0x123, 10, 6, 12}, {0x124, 10, 12, 6}, {0x125, 10, 3, 13}, {0x126, 10, 13, 3},
	{0x127, 10, 2, 13}, {0x128, 10, 13, 2}, {0x129, 10, 1, 13}, {0x12a, 10, 7, 11},
	{0x12b, 10, 11, 7}, {0x12c, 10, 13, 1}, {0x12d, 10, 5, 12}, {0x12e, 10, 12, 5},
	{0x12f, 10, 8, 10}, {0x130, 10, 10, 8}, {0x131, 10, 9, 9}, {0x132, 10, 4, 12},
	{0x133, 10, 12, 4}, {0x134, 10, 6, 11}, {0x135, 10, 11, 6}, {0x137, 10, 3, 12},
	{0x138, 10, 12, 3}, {0x139, 10, 7, 10}, {0x13a, 10, 10, 7}, {0x13b, 10, 2, 12},
	{0x13c, 10, 12, 2}, {0x13d, 10, 5, 11}, {0x13e, 10, 11, 5}, {0x13f, 10, 1, 12},
	{0x140, 10, 8, 9}, {0x141, 10, 9, 8}, {0x142, 10, 12, 1}, {0x143, 10, 4, 11},
	{0x145, 10, 3, 11}, {0x147, 10, 1, 10}, {0x14a, 10, 6, 10}, {0x14b, 10, 10, 6},
	{0x14c, 10, 7, 9}, {0x14d, 10, 9, 7}, {0x14f, 10, 9, 0}, {0x154, 10, 2, 11},
	{0x155, 10, 5, 10}, {0x158, 10, 10, 5}, {0x159, 10, 1, 11}, {0x15a, 10, 11, 1},
	{0x15b, 10, 6, 9}, {0x160, 10, 4, 10}, {0x161, 10, 7, 8}, {0x1aa, 10, 0, 8},
	{0x1ab, 10, 8, 0}, {0x1b2, 10, 0, 7}, {0x1b3, 10, 7, 0}, {0x164, 11, 14, 14},
	{0x165, 11, 13, 14}, {0x166, 11, 14, 13}, {0x167, 11, 12, 14}, {0x168, 11, 14, 12},
	{0x169, 11, 13, 13}, {0x16a, 11, 11, 14}, {0x16b, 11, 14, 11}, {0x16c, 11, 12, 13},
	{0x16d, 11, 13, 12}, {0x16e, 11, 10, 14}, {0x16f, 11, 14, 10}, {0x170, 11, 11, 13},
	{0x171, 11, 13, 11}, {0x172, 11, 12, 12}, {0x173, 11, 9, 14}, {0x174, 11, 14, 9},
	{0x175, 11, 10, 13}, {0x176, 11, 13, 10}, {0x177, 11, 11, 12}, {0x178, 11, 12, 11},
	{0x179, 11, 8, 14}, {0x17a, 11, 14, 8}, {0x17b, 11, 9, 13}, {0x17c, 11, 13, 9},
	{0x17d, 11, 7, 14}, {0x17e, 11, 14, 7}, {0x17f, 11, 10, 12}, {0x200, 11, 12, 10},
	{0x201, 11, 11, 11}, {0x202, 11, 8, 13}, {0x203, 11, 13, 8}, {0x205, 11, 0, 13},
	{0x208, 11, 6, 14}, {0x209, 11, 9, 12}, {0x212, 11, 10, 11}, {0x213, 11, 7, 13},
	{0x21c, 11, 4, 14}, {0x21d, 11, 2, 14}, {0x26c, 11, 13, 0}, {0x26d, 11, 0, 12},
	{0x288, 11, 12, 0}, {0x289, 11, 0, 11}, {0x28c, 11, 11, 0}, {0x28d, 11, 0, 10},
	{0x29c, 11, 10, 0}, {0x29d, 11, 0, 9}, {0x408, 12, 0, 14}, {0x409, 12, 14, 0},
}

var quadTableA = []huffmanCode{
	{0x1, 1, 0, 0}, {0x4, 4, 0, 2}, {0x5, 4, 0, 1}, {0x6, 4, 0, 4},
	{0x7, 4, 0, 8}, {0x3, 5, 0, 9}, {0x4, 5, 0, 6}, {0x5, 5, 0, 3},
	{0x6, 5, 0, 10}, {0x7, 5, 0, 12}, {0x0, 6, 0, 11}, {0x1, 6, 0, 15},
	{0x2, 6, 0, 13}, {0x3, 6, 0, 14}, {0x4, 6, 0, 7}, {0x5, 6, 0, 5},
}
