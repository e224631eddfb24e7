package qrcode

// The six lookup tables below are transcribed bit-exact from main.c in the
// alfazet/quer original_source this encoder is modeled on (design note:
// that variant's TOTAL_DATA_CODEWORDS table, including the level-Q entries
// for versions 13-24, is the one to match against the ISO/IEC 18004
// standard — an earlier source variant had incorrect values there).
//
// All tables are indexed [level][version], except alignmentBaseTable and
// versionInfoTable which are indexed by version alone. Index 0 (version 0)
// is unused padding so that version numbers (1-40) can index directly.

// capacityTable is the data capacity, in bytes, for a given level and
// version.
var capacityTable = [4][41]int{
	{0, 17, 32, 53, 78, 106, 134, 154, 192, 230, 271, 321, 367, 425,
		458, 520, 586, 644, 718, 792, 858, 929, 1003, 1091, 1171, 1273, 1367, 1465,
		1528, 1628, 1732, 1840, 1952, 2068, 2188, 2303, 2431, 2563, 2699, 2809, 2953},
	{0, 14, 26, 42, 62, 84, 106, 122, 152, 180, 213, 251, 287, 331,
		362, 412, 450, 504, 560, 624, 666, 711, 779, 857, 911, 997, 1059, 1125,
		1190, 1264, 1370, 1452, 1538, 1628, 1722, 1809, 1911, 1989, 2099, 2213, 2331},
	{0, 11, 20, 32, 46, 60, 74, 86, 108, 130, 151, 177, 203, 241, 258, 292, 322, 364, 394, 442, 482,
		509, 565, 611, 661, 715, 751, 805, 868, 908, 982, 1030, 1112, 1168, 1228, 1283, 1351, 1423, 1499, 1579, 1663},
	{0, 7, 14, 24, 34, 44, 58, 64, 84, 98, 119, 137, 155, 177, 194, 220, 250, 280, 310, 338, 382,
		403, 439, 461, 511, 535, 593, 625, 658, 698, 742, 790, 842, 898, 958, 983, 1051, 1093, 1139, 1219, 1273},
}

// totalDataCodewordsTable is the total number of data codewords for a
// given level and version.
var totalDataCodewordsTable = [4][41]int{
	{0, 19, 34, 55, 80, 108, 136, 156, 194, 232, 274, 324, 370, 428,
		461, 523, 589, 647, 721, 795, 861, 932, 1006, 1094, 1174, 1276, 1370, 1468,
		1531, 1631, 1735, 1843, 1955, 2071, 2191, 2306, 2434, 2566, 2702, 2812, 2956},
	{0, 16, 28, 44, 64, 86, 108, 124, 154, 182, 216, 254, 290, 334,
		365, 415, 453, 507, 563, 627, 669, 714, 782, 860, 914, 1000, 1062, 1128,
		1193, 1267, 1373, 1455, 1541, 1631, 1725, 1812, 1914, 1992, 2102, 2216, 2334},
	{0, 13, 22, 34, 48, 62, 76, 88, 110, 132, 154, 180, 206, 244,
		261, 295, 325, 367, 397, 445, 485, 512, 568, 614, 664, 718, 754, 808,
		871, 911, 985, 1033, 1115, 1171, 1231, 1286, 1354, 1426, 1502, 1582, 1666},
	{0, 9, 16, 26, 36, 46, 60, 66, 86, 100, 122, 140, 158, 180, 197, 223, 253, 283, 313, 341, 385,
		406, 442, 464, 514, 538, 596, 628, 661, 701, 745, 793, 845, 901, 961, 986, 1054, 1096, 1142, 1222, 1276},
}

// totalAvailableModulesTable is the number of bits (modules) available for
// codewords, excluding all functional patterns, for a given version.
var totalAvailableModulesTable = [41]int{
	0, 208, 359, 567, 807, 1079, 1383, 1568, 1936, 2336, 2768, 3232, 3728, 4256,
	4651, 5243, 5867, 6523, 7211, 7931, 8683, 9252, 10068, 10916, 11796, 12708, 13652, 14628,
	15371, 16411, 17483, 18587, 19723, 20891, 22091, 23008, 24272, 25568, 26896, 28256, 29648,
}

// corrCodewordsPerBlockTable is the number of Reed-Solomon correction
// codewords per block for a given level and version.
var corrCodewordsPerBlockTable = [4][41]int{
	{0, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28,
		28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{0, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26,
		26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{0, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30,
		28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{0, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28,
		30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// totalBlocksTable is the total number of Reed-Solomon blocks for a given
// level and version.
var totalBlocksTable = [4][41]int{
	{0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8,
		8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{0, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16,
		17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{0, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20,
		23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{0, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25,
		25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// versionInfoTable is the 18-bit version information code for versions
// 7-40 (versions 1-6 carry no version information pattern).
var versionInfoTable = [41]int{
	0, 0, 0, 0, 0, 0, 0, 0x07C94, 0x085BC,
	0x09A99, 0x0A4D3, 0x0BBF6, 0x0C762, 0x0D847, 0x0E60D, 0x0F928, 0x10B78, 0x1145D,
	0x12A17, 0x13532, 0x149A6, 0x15683, 0x168C9, 0x177EC, 0x18EC4, 0x191E1, 0x1AFAB,
	0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250, 0x209D5, 0x216F0, 0x228BA, 0x2379F,
	0x24B0B, 0x2542E, 0x26A64, 0x27541, 0x28C69,
}
