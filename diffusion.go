package ledwand

// diffusionTable holds the Ostromoukhov coefficients, indexed by the
// quantization error of a pixel. The three values go to the next pixel in
// scan direction, the pixel below and behind it, and the pixel below.
// The numbers are an empirical calibration and must not be edited.
var diffusionTable = [256][3]int16{
	{0, 1, 0}, {1, 0, 0}, {1, 0, 1}, {2, 0, 1},
	{2, 0, 2}, {3, 0, 2}, {4, 0, 2}, {4, 1, 2},
	{5, 1, 2}, {5, 2, 2}, {5, 3, 2}, {6, 3, 2},
	{6, 3, 3}, {7, 3, 3}, {7, 4, 3}, {8, 4, 3},
	{8, 5, 3}, {9, 5, 3}, {9, 5, 4}, {10, 6, 3},
	{10, 6, 4}, {11, 7, 3}, {11, 7, 4}, {11, 8, 4},
	{12, 7, 5}, {12, 7, 6}, {12, 7, 7}, {12, 7, 8},
	{12, 7, 9}, {13, 7, 9}, {13, 7, 10}, {13, 7, 11},
	{13, 7, 12}, {14, 7, 12}, {14, 8, 12}, {15, 8, 12},
	{15, 9, 12}, {16, 9, 12}, {16, 10, 12}, {17, 10, 12},
	{17, 11, 12}, {18, 12, 11}, {19, 12, 11}, {19, 13, 11},
	{20, 13, 11}, {20, 14, 11}, {21, 15, 10}, {22, 15, 10},
	{22, 17, 9}, {23, 17, 9}, {24, 18, 8}, {24, 19, 8},
	{25, 19, 8}, {26, 20, 7}, {26, 21, 7}, {27, 22, 6},
	{28, 23, 5}, {28, 24, 5}, {29, 25, 4}, {30, 26, 3},
	{31, 26, 3}, {31, 28, 2}, {32, 28, 2}, {33, 29, 1},
	{34, 30, 0}, {33, 31, 1}, {32, 33, 1}, {32, 33, 2},
	{31, 34, 3}, {30, 36, 3}, {29, 37, 4}, {29, 37, 5},
	{28, 39, 5}, {32, 34, 7}, {37, 29, 8}, {42, 23, 10},
	{46, 19, 11}, {51, 13, 12}, {52, 14, 13}, {53, 13, 12},
	{53, 14, 13}, {54, 14, 13}, {55, 14, 13}, {55, 14, 13},
	{56, 15, 14}, {57, 14, 13}, {56, 15, 15}, {55, 17, 15},
	{54, 18, 16}, {53, 20, 16}, {52, 21, 17}, {52, 22, 17},
	{51, 24, 17}, {50, 25, 18}, {49, 27, 18}, {47, 29, 19},
	{48, 29, 19}, {48, 29, 20}, {49, 29, 20}, {49, 30, 20},
	{50, 31, 20}, {50, 31, 20}, {51, 31, 20}, {51, 31, 21},
	{52, 31, 21}, {52, 32, 21}, {53, 32, 21}, {53, 32, 22},
	{55, 32, 21}, {56, 31, 22}, {58, 31, 21}, {59, 30, 22},
	{61, 30, 21}, {62, 29, 22}, {64, 29, 21}, {65, 28, 22},
	{67, 28, 21}, {68, 27, 22}, {70, 27, 21}, {71, 26, 22},
	{73, 26, 21}, {75, 25, 21}, {76, 25, 21}, {78, 24, 21},
	{80, 23, 21}, {81, 23, 21}, {83, 22, 21}, {85, 21, 20},
	{85, 22, 21}, {85, 22, 22}, {84, 24, 22}, {84, 24, 23},
	{84, 25, 23}, {83, 27, 23}, {83, 28, 23}, {82, 29, 24},
	{82, 30, 24}, {81, 31, 25}, {80, 32, 26}, {80, 33, 26},
	{79, 35, 26}, {79, 36, 26}, {78, 37, 27}, {77, 38, 28},
	{77, 39, 28}, {76, 41, 28}, {75, 42, 29}, {75, 43, 29},
	{74, 44, 30}, {74, 45, 30}, {75, 46, 30}, {75, 46, 30},
	{76, 46, 30}, {76, 46, 31}, {77, 46, 31}, {77, 47, 31},
	{78, 47, 31}, {78, 47, 32}, {79, 47, 32}, {79, 48, 32},
	{80, 49, 32}, {83, 46, 32}, {86, 44, 32}, {90, 42, 31},
	{93, 40, 31}, {96, 39, 30}, {100, 36, 30}, {103, 35, 29},
	{106, 33, 29}, {110, 30, 29}, {113, 29, 28}, {114, 29, 28},
	{115, 29, 28}, {115, 29, 28}, {116, 30, 29}, {117, 29, 28},
	{117, 30, 29}, {118, 30, 29}, {119, 30, 29}, {109, 43, 27},
	{100, 57, 23}, {90, 71, 20}, {80, 85, 17}, {70, 99, 14},
	{74, 98, 12}, {78, 97, 10}, {81, 96, 9}, {85, 95, 7},
	{89, 94, 5}, {92, 93, 4}, {96, 92, 2}, {100, 91, 0},
	{100, 90, 2}, {100, 88, 5}, {100, 87, 7}, {99, 86, 10},
	{99, 85, 12}, {99, 84, 14}, {99, 82, 17}, {98, 81, 20},
	{98, 80, 22}, {98, 79, 24}, {98, 77, 27}, {98, 76, 29},
	{97, 75, 32}, {97, 73, 35}, {97, 72, 37}, {96, 71, 40},
	{96, 69, 43}, {96, 67, 46}, {96, 66, 48}, {95, 65, 51},
	{95, 63, 54}, {95, 61, 57}, {94, 60, 60}, {94, 58, 63},
	{94, 57, 65}, {93, 55, 69}, {93, 54, 71}, {93, 52, 74},
	{92, 51, 77}, {92, 49, 80}, {91, 47, 84}, {91, 46, 86},
	{93, 49, 82}, {96, 52, 77}, {98, 55, 73}, {101, 58, 68},
	{104, 61, 63}, {106, 65, 58}, {109, 68, 53}, {111, 71, 49},
	{114, 74, 44}, {116, 78, 39}, {118, 76, 40}, {119, 74, 42},
	{120, 73, 43}, {122, 71, 44}, {123, 69, 46}, {124, 67, 48},
	{125, 66, 49}, {127, 64, 50}, {128, 62, 52}, {129, 60, 54},
	{131, 58, 55}, {132, 57, 56}, {136, 47, 63}, {139, 38, 70},
	{143, 29, 76}, {147, 19, 83}, {151, 9, 90}, {154, 0, 97},
	{160, 0, 92}, {171, 0, 82}, {183, 0, 71}, {184, 0, 71},
}
