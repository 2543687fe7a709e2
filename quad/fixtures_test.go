package quad_test

// Expected enumeration of the seven-star reference field, one list per quad size.
// Every subset appears twice per anchor order, once for each parity.

var wantQuads4 = [][]int{
	{0, 1, 4, 3}, {0, 1, 3, 4}, {1, 0, 4, 3}, {1, 0, 3, 4}, {0, 1, 4, 3}, {0, 1, 3, 4},
	{1, 0, 4, 3}, {1, 0, 3, 4}, {0, 2, 4, 3}, {0, 2, 3, 4}, {2, 0, 4, 3}, {2, 0, 3, 4},
	{0, 2, 4, 3}, {0, 2, 3, 4}, {2, 0, 4, 3}, {2, 0, 3, 4}, {1, 2, 4, 3}, {1, 2, 3, 4},
	{2, 1, 4, 3}, {2, 1, 3, 4}, {1, 2, 4, 3}, {1, 2, 3, 4}, {2, 1, 4, 3}, {2, 1, 3, 4},
	{2, 5, 0, 1}, {2, 5, 1, 0}, {5, 2, 0, 1}, {5, 2, 1, 0}, {2, 5, 0, 1}, {2, 5, 1, 0},
	{5, 2, 0, 1}, {5, 2, 1, 0}, {2, 5, 0, 3}, {2, 5, 3, 0}, {5, 2, 0, 3}, {5, 2, 3, 0},
	{2, 5, 0, 3}, {2, 5, 3, 0}, {5, 2, 0, 3}, {5, 2, 3, 0}, {2, 5, 0, 4}, {2, 5, 4, 0},
	{5, 2, 0, 4}, {5, 2, 4, 0}, {2, 5, 0, 4}, {2, 5, 4, 0}, {5, 2, 0, 4}, {5, 2, 4, 0},
	{2, 5, 1, 3}, {2, 5, 3, 1}, {5, 2, 1, 3}, {5, 2, 3, 1}, {2, 5, 1, 3}, {2, 5, 3, 1},
	{5, 2, 1, 3}, {5, 2, 3, 1}, {2, 5, 1, 4}, {2, 5, 4, 1}, {5, 2, 1, 4}, {5, 2, 4, 1},
	{2, 5, 1, 4}, {2, 5, 4, 1}, {5, 2, 1, 4}, {5, 2, 4, 1}, {2, 5, 3, 4}, {2, 5, 4, 3},
	{5, 2, 3, 4}, {5, 2, 4, 3}, {2, 5, 3, 4}, {2, 5, 4, 3}, {5, 2, 3, 4}, {5, 2, 4, 3},
	{0, 1, 5, 3}, {0, 1, 3, 5}, {1, 0, 5, 3}, {1, 0, 3, 5}, {0, 1, 5, 3}, {0, 1, 3, 5},
	{1, 0, 5, 3}, {1, 0, 3, 5}, {0, 1, 5, 4}, {0, 1, 4, 5}, {1, 0, 5, 4}, {1, 0, 4, 5},
	{0, 1, 5, 4}, {0, 1, 4, 5}, {1, 0, 5, 4}, {1, 0, 4, 5}, {0, 6, 4, 5}, {0, 6, 5, 4},
	{6, 0, 4, 5}, {6, 0, 5, 4}, {0, 6, 4, 5}, {0, 6, 5, 4}, {6, 0, 4, 5}, {6, 0, 5, 4},
	{1, 6, 4, 5}, {1, 6, 5, 4}, {6, 1, 4, 5}, {6, 1, 5, 4}, {1, 6, 4, 5}, {1, 6, 5, 4},
	{6, 1, 4, 5}, {6, 1, 5, 4}, {2, 6, 0, 1}, {2, 6, 1, 0}, {6, 2, 0, 1}, {6, 2, 1, 0},
	{2, 6, 0, 1}, {2, 6, 1, 0}, {6, 2, 0, 1}, {6, 2, 1, 0}, {2, 6, 0, 3}, {2, 6, 3, 0},
	{6, 2, 0, 3}, {6, 2, 3, 0}, {2, 6, 0, 3}, {2, 6, 3, 0}, {6, 2, 0, 3}, {6, 2, 3, 0},
	{2, 6, 0, 4}, {2, 6, 4, 0}, {6, 2, 0, 4}, {6, 2, 4, 0}, {2, 6, 0, 4}, {2, 6, 4, 0},
	{6, 2, 0, 4}, {6, 2, 4, 0}, {2, 6, 0, 5}, {2, 6, 5, 0}, {6, 2, 0, 5}, {6, 2, 5, 0},
	{2, 6, 0, 5}, {2, 6, 5, 0}, {6, 2, 0, 5}, {6, 2, 5, 0}, {2, 6, 1, 3}, {2, 6, 3, 1},
	{6, 2, 1, 3}, {6, 2, 3, 1}, {2, 6, 1, 3}, {2, 6, 3, 1}, {6, 2, 1, 3}, {6, 2, 3, 1},
	{2, 6, 1, 4}, {2, 6, 4, 1}, {6, 2, 1, 4}, {6, 2, 4, 1}, {2, 6, 1, 4}, {2, 6, 4, 1},
	{6, 2, 1, 4}, {6, 2, 4, 1}, {2, 6, 1, 5}, {2, 6, 5, 1}, {6, 2, 1, 5}, {6, 2, 5, 1},
	{2, 6, 1, 5}, {2, 6, 5, 1}, {6, 2, 1, 5}, {6, 2, 5, 1}, {2, 6, 3, 4}, {2, 6, 4, 3},
	{6, 2, 3, 4}, {6, 2, 4, 3}, {2, 6, 3, 4}, {2, 6, 4, 3}, {6, 2, 3, 4}, {6, 2, 4, 3},
	{2, 6, 3, 5}, {2, 6, 5, 3}, {6, 2, 3, 5}, {6, 2, 5, 3}, {2, 6, 3, 5}, {2, 6, 5, 3},
	{6, 2, 3, 5}, {6, 2, 5, 3}, {2, 6, 4, 5}, {2, 6, 5, 4}, {6, 2, 4, 5}, {6, 2, 5, 4},
	{2, 6, 4, 5}, {2, 6, 5, 4}, {6, 2, 4, 5}, {6, 2, 5, 4}, {3, 6, 0, 1}, {3, 6, 1, 0},
	{6, 3, 0, 1}, {6, 3, 1, 0}, {3, 6, 0, 1}, {3, 6, 1, 0}, {6, 3, 0, 1}, {6, 3, 1, 0},
	{3, 6, 0, 4}, {3, 6, 4, 0}, {6, 3, 0, 4}, {6, 3, 4, 0}, {3, 6, 0, 4}, {3, 6, 4, 0},
	{6, 3, 0, 4}, {6, 3, 4, 0}, {3, 6, 0, 5}, {3, 6, 5, 0}, {6, 3, 0, 5}, {6, 3, 5, 0},
	{3, 6, 0, 5}, {3, 6, 5, 0}, {6, 3, 0, 5}, {6, 3, 5, 0}, {3, 6, 1, 4}, {3, 6, 4, 1},
	{6, 3, 1, 4}, {6, 3, 4, 1}, {3, 6, 1, 4}, {3, 6, 4, 1}, {6, 3, 1, 4}, {6, 3, 4, 1},
	{3, 6, 1, 5}, {3, 6, 5, 1}, {6, 3, 1, 5}, {6, 3, 5, 1}, {3, 6, 1, 5}, {3, 6, 5, 1},
	{6, 3, 1, 5}, {6, 3, 5, 1}, {3, 6, 4, 5}, {3, 6, 5, 4}, {6, 3, 4, 5}, {6, 3, 5, 4},
	{3, 6, 4, 5}, {3, 6, 5, 4}, {6, 3, 4, 5}, {6, 3, 5, 4},
}

var wantQuads3 = [][]int{
	{0, 1, 3}, {1, 0, 3}, {0, 1, 3}, {1, 0, 3}, {0, 2, 3}, {2, 0, 3},
	{0, 2, 3}, {2, 0, 3}, {1, 2, 3}, {2, 1, 3}, {1, 2, 3}, {2, 1, 3},
	{2, 4, 3}, {4, 2, 3}, {2, 4, 3}, {4, 2, 3}, {0, 1, 4}, {1, 0, 4},
	{0, 1, 4}, {1, 0, 4}, {0, 2, 4}, {2, 0, 4}, {0, 2, 4}, {2, 0, 4},
	{0, 3, 4}, {3, 0, 4}, {0, 3, 4}, {3, 0, 4}, {1, 2, 4}, {2, 1, 4},
	{1, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 1, 4}, {1, 3, 4}, {3, 1, 4},
	{0, 5, 4}, {5, 0, 4}, {0, 5, 4}, {5, 0, 4}, {1, 5, 4}, {5, 1, 4},
	{1, 5, 4}, {5, 1, 4}, {2, 5, 0}, {5, 2, 0}, {2, 5, 0}, {5, 2, 0},
	{2, 5, 1}, {5, 2, 1}, {2, 5, 1}, {5, 2, 1}, {2, 5, 3}, {5, 2, 3},
	{2, 5, 3}, {5, 2, 3}, {2, 5, 4}, {5, 2, 4}, {2, 5, 4}, {5, 2, 4},
	{3, 5, 4}, {5, 3, 4}, {3, 5, 4}, {5, 3, 4}, {0, 1, 5}, {1, 0, 5},
	{0, 1, 5}, {1, 0, 5}, {0, 6, 4}, {6, 0, 4}, {0, 6, 4}, {6, 0, 4},
	{0, 6, 5}, {6, 0, 5}, {0, 6, 5}, {6, 0, 5}, {1, 6, 4}, {6, 1, 4},
	{1, 6, 4}, {6, 1, 4}, {1, 6, 5}, {6, 1, 5}, {1, 6, 5}, {6, 1, 5},
	{2, 6, 0}, {6, 2, 0}, {2, 6, 0}, {6, 2, 0}, {2, 6, 1}, {6, 2, 1},
	{2, 6, 1}, {6, 2, 1}, {2, 6, 3}, {6, 2, 3}, {2, 6, 3}, {6, 2, 3},
	{2, 6, 4}, {6, 2, 4}, {2, 6, 4}, {6, 2, 4}, {2, 6, 5}, {6, 2, 5},
	{2, 6, 5}, {6, 2, 5}, {3, 6, 0}, {6, 3, 0}, {3, 6, 0}, {6, 3, 0},
	{3, 6, 1}, {6, 3, 1}, {3, 6, 1}, {6, 3, 1}, {3, 6, 4}, {6, 3, 4},
	{3, 6, 4}, {6, 3, 4}, {3, 6, 5}, {6, 3, 5}, {3, 6, 5}, {6, 3, 5},
	{4, 6, 5}, {6, 4, 5}, {4, 6, 5}, {6, 4, 5},
}

var wantQuads5 = [][]int{
	{2, 5, 0, 1, 3}, {2, 5, 0, 3, 1}, {2, 5, 1, 0, 3}, {2, 5, 1, 3, 0}, {2, 5, 3, 0, 1},
	{2, 5, 3, 1, 0}, {5, 2, 0, 1, 3}, {5, 2, 0, 3, 1}, {5, 2, 1, 0, 3}, {5, 2, 1, 3, 0},
	{5, 2, 3, 0, 1}, {5, 2, 3, 1, 0}, {2, 5, 0, 1, 3}, {2, 5, 0, 3, 1}, {2, 5, 1, 0, 3},
	{2, 5, 1, 3, 0}, {2, 5, 3, 0, 1}, {2, 5, 3, 1, 0}, {5, 2, 0, 1, 3}, {5, 2, 0, 3, 1},
	{5, 2, 1, 0, 3}, {5, 2, 1, 3, 0}, {5, 2, 3, 0, 1}, {5, 2, 3, 1, 0}, {2, 5, 0, 1, 4},
	{2, 5, 0, 4, 1}, {2, 5, 1, 0, 4}, {2, 5, 1, 4, 0}, {2, 5, 4, 0, 1}, {2, 5, 4, 1, 0},
	{5, 2, 0, 1, 4}, {5, 2, 0, 4, 1}, {5, 2, 1, 0, 4}, {5, 2, 1, 4, 0}, {5, 2, 4, 0, 1},
	{5, 2, 4, 1, 0}, {2, 5, 0, 1, 4}, {2, 5, 0, 4, 1}, {2, 5, 1, 0, 4}, {2, 5, 1, 4, 0},
	{2, 5, 4, 0, 1}, {2, 5, 4, 1, 0}, {5, 2, 0, 1, 4}, {5, 2, 0, 4, 1}, {5, 2, 1, 0, 4},
	{5, 2, 1, 4, 0}, {5, 2, 4, 0, 1}, {5, 2, 4, 1, 0}, {2, 5, 0, 3, 4}, {2, 5, 0, 4, 3},
	{2, 5, 3, 0, 4}, {2, 5, 3, 4, 0}, {2, 5, 4, 0, 3}, {2, 5, 4, 3, 0}, {5, 2, 0, 3, 4},
	{5, 2, 0, 4, 3}, {5, 2, 3, 0, 4}, {5, 2, 3, 4, 0}, {5, 2, 4, 0, 3}, {5, 2, 4, 3, 0},
	{2, 5, 0, 3, 4}, {2, 5, 0, 4, 3}, {2, 5, 3, 0, 4}, {2, 5, 3, 4, 0}, {2, 5, 4, 0, 3},
	{2, 5, 4, 3, 0}, {5, 2, 0, 3, 4}, {5, 2, 0, 4, 3}, {5, 2, 3, 0, 4}, {5, 2, 3, 4, 0},
	{5, 2, 4, 0, 3}, {5, 2, 4, 3, 0}, {2, 5, 1, 3, 4}, {2, 5, 1, 4, 3}, {2, 5, 3, 1, 4},
	{2, 5, 3, 4, 1}, {2, 5, 4, 1, 3}, {2, 5, 4, 3, 1}, {5, 2, 1, 3, 4}, {5, 2, 1, 4, 3},
	{5, 2, 3, 1, 4}, {5, 2, 3, 4, 1}, {5, 2, 4, 1, 3}, {5, 2, 4, 3, 1}, {2, 5, 1, 3, 4},
	{2, 5, 1, 4, 3}, {2, 5, 3, 1, 4}, {2, 5, 3, 4, 1}, {2, 5, 4, 1, 3}, {2, 5, 4, 3, 1},
	{5, 2, 1, 3, 4}, {5, 2, 1, 4, 3}, {5, 2, 3, 1, 4}, {5, 2, 3, 4, 1}, {5, 2, 4, 1, 3},
	{5, 2, 4, 3, 1}, {0, 1, 5, 3, 4}, {0, 1, 5, 4, 3}, {0, 1, 3, 5, 4}, {0, 1, 3, 4, 5},
	{0, 1, 4, 5, 3}, {0, 1, 4, 3, 5}, {1, 0, 5, 3, 4}, {1, 0, 5, 4, 3}, {1, 0, 3, 5, 4},
	{1, 0, 3, 4, 5}, {1, 0, 4, 5, 3}, {1, 0, 4, 3, 5}, {0, 1, 5, 3, 4}, {0, 1, 5, 4, 3},
	{0, 1, 3, 5, 4}, {0, 1, 3, 4, 5}, {0, 1, 4, 5, 3}, {0, 1, 4, 3, 5}, {1, 0, 5, 3, 4},
	{1, 0, 5, 4, 3}, {1, 0, 3, 5, 4}, {1, 0, 3, 4, 5}, {1, 0, 4, 5, 3}, {1, 0, 4, 3, 5},
	{2, 6, 0, 1, 3}, {2, 6, 0, 3, 1}, {2, 6, 1, 0, 3}, {2, 6, 1, 3, 0}, {2, 6, 3, 0, 1},
	{2, 6, 3, 1, 0}, {6, 2, 0, 1, 3}, {6, 2, 0, 3, 1}, {6, 2, 1, 0, 3}, {6, 2, 1, 3, 0},
	{6, 2, 3, 0, 1}, {6, 2, 3, 1, 0}, {2, 6, 0, 1, 3}, {2, 6, 0, 3, 1}, {2, 6, 1, 0, 3},
	{2, 6, 1, 3, 0}, {2, 6, 3, 0, 1}, {2, 6, 3, 1, 0}, {6, 2, 0, 1, 3}, {6, 2, 0, 3, 1},
	{6, 2, 1, 0, 3}, {6, 2, 1, 3, 0}, {6, 2, 3, 0, 1}, {6, 2, 3, 1, 0}, {2, 6, 0, 1, 4},
	{2, 6, 0, 4, 1}, {2, 6, 1, 0, 4}, {2, 6, 1, 4, 0}, {2, 6, 4, 0, 1}, {2, 6, 4, 1, 0},
	{6, 2, 0, 1, 4}, {6, 2, 0, 4, 1}, {6, 2, 1, 0, 4}, {6, 2, 1, 4, 0}, {6, 2, 4, 0, 1},
	{6, 2, 4, 1, 0}, {2, 6, 0, 1, 4}, {2, 6, 0, 4, 1}, {2, 6, 1, 0, 4}, {2, 6, 1, 4, 0},
	{2, 6, 4, 0, 1}, {2, 6, 4, 1, 0}, {6, 2, 0, 1, 4}, {6, 2, 0, 4, 1}, {6, 2, 1, 0, 4},
	{6, 2, 1, 4, 0}, {6, 2, 4, 0, 1}, {6, 2, 4, 1, 0}, {2, 6, 0, 1, 5}, {2, 6, 0, 5, 1},
	{2, 6, 1, 0, 5}, {2, 6, 1, 5, 0}, {2, 6, 5, 0, 1}, {2, 6, 5, 1, 0}, {6, 2, 0, 1, 5},
	{6, 2, 0, 5, 1}, {6, 2, 1, 0, 5}, {6, 2, 1, 5, 0}, {6, 2, 5, 0, 1}, {6, 2, 5, 1, 0},
	{2, 6, 0, 1, 5}, {2, 6, 0, 5, 1}, {2, 6, 1, 0, 5}, {2, 6, 1, 5, 0}, {2, 6, 5, 0, 1},
	{2, 6, 5, 1, 0}, {6, 2, 0, 1, 5}, {6, 2, 0, 5, 1}, {6, 2, 1, 0, 5}, {6, 2, 1, 5, 0},
	{6, 2, 5, 0, 1}, {6, 2, 5, 1, 0}, {2, 6, 0, 3, 4}, {2, 6, 0, 4, 3}, {2, 6, 3, 0, 4},
	{2, 6, 3, 4, 0}, {2, 6, 4, 0, 3}, {2, 6, 4, 3, 0}, {6, 2, 0, 3, 4}, {6, 2, 0, 4, 3},
	{6, 2, 3, 0, 4}, {6, 2, 3, 4, 0}, {6, 2, 4, 0, 3}, {6, 2, 4, 3, 0}, {2, 6, 0, 3, 4},
	{2, 6, 0, 4, 3}, {2, 6, 3, 0, 4}, {2, 6, 3, 4, 0}, {2, 6, 4, 0, 3}, {2, 6, 4, 3, 0},
	{6, 2, 0, 3, 4}, {6, 2, 0, 4, 3}, {6, 2, 3, 0, 4}, {6, 2, 3, 4, 0}, {6, 2, 4, 0, 3},
	{6, 2, 4, 3, 0}, {2, 6, 0, 3, 5}, {2, 6, 0, 5, 3}, {2, 6, 3, 0, 5}, {2, 6, 3, 5, 0},
	{2, 6, 5, 0, 3}, {2, 6, 5, 3, 0}, {6, 2, 0, 3, 5}, {6, 2, 0, 5, 3}, {6, 2, 3, 0, 5},
	{6, 2, 3, 5, 0}, {6, 2, 5, 0, 3}, {6, 2, 5, 3, 0}, {2, 6, 0, 3, 5}, {2, 6, 0, 5, 3},
	{2, 6, 3, 0, 5}, {2, 6, 3, 5, 0}, {2, 6, 5, 0, 3}, {2, 6, 5, 3, 0}, {6, 2, 0, 3, 5},
	{6, 2, 0, 5, 3}, {6, 2, 3, 0, 5}, {6, 2, 3, 5, 0}, {6, 2, 5, 0, 3}, {6, 2, 5, 3, 0},
	{2, 6, 0, 4, 5}, {2, 6, 0, 5, 4}, {2, 6, 4, 0, 5}, {2, 6, 4, 5, 0}, {2, 6, 5, 0, 4},
	{2, 6, 5, 4, 0}, {6, 2, 0, 4, 5}, {6, 2, 0, 5, 4}, {6, 2, 4, 0, 5}, {6, 2, 4, 5, 0},
	{6, 2, 5, 0, 4}, {6, 2, 5, 4, 0}, {2, 6, 0, 4, 5}, {2, 6, 0, 5, 4}, {2, 6, 4, 0, 5},
	{2, 6, 4, 5, 0}, {2, 6, 5, 0, 4}, {2, 6, 5, 4, 0}, {6, 2, 0, 4, 5}, {6, 2, 0, 5, 4},
	{6, 2, 4, 0, 5}, {6, 2, 4, 5, 0}, {6, 2, 5, 0, 4}, {6, 2, 5, 4, 0}, {2, 6, 1, 3, 4},
	{2, 6, 1, 4, 3}, {2, 6, 3, 1, 4}, {2, 6, 3, 4, 1}, {2, 6, 4, 1, 3}, {2, 6, 4, 3, 1},
	{6, 2, 1, 3, 4}, {6, 2, 1, 4, 3}, {6, 2, 3, 1, 4}, {6, 2, 3, 4, 1}, {6, 2, 4, 1, 3},
	{6, 2, 4, 3, 1}, {2, 6, 1, 3, 4}, {2, 6, 1, 4, 3}, {2, 6, 3, 1, 4}, {2, 6, 3, 4, 1},
	{2, 6, 4, 1, 3}, {2, 6, 4, 3, 1}, {6, 2, 1, 3, 4}, {6, 2, 1, 4, 3}, {6, 2, 3, 1, 4},
	{6, 2, 3, 4, 1}, {6, 2, 4, 1, 3}, {6, 2, 4, 3, 1}, {2, 6, 1, 3, 5}, {2, 6, 1, 5, 3},
	{2, 6, 3, 1, 5}, {2, 6, 3, 5, 1}, {2, 6, 5, 1, 3}, {2, 6, 5, 3, 1}, {6, 2, 1, 3, 5},
	{6, 2, 1, 5, 3}, {6, 2, 3, 1, 5}, {6, 2, 3, 5, 1}, {6, 2, 5, 1, 3}, {6, 2, 5, 3, 1},
	{2, 6, 1, 3, 5}, {2, 6, 1, 5, 3}, {2, 6, 3, 1, 5}, {2, 6, 3, 5, 1}, {2, 6, 5, 1, 3},
	{2, 6, 5, 3, 1}, {6, 2, 1, 3, 5}, {6, 2, 1, 5, 3}, {6, 2, 3, 1, 5}, {6, 2, 3, 5, 1},
	{6, 2, 5, 1, 3}, {6, 2, 5, 3, 1}, {2, 6, 1, 4, 5}, {2, 6, 1, 5, 4}, {2, 6, 4, 1, 5},
	{2, 6, 4, 5, 1}, {2, 6, 5, 1, 4}, {2, 6, 5, 4, 1}, {6, 2, 1, 4, 5}, {6, 2, 1, 5, 4},
	{6, 2, 4, 1, 5}, {6, 2, 4, 5, 1}, {6, 2, 5, 1, 4}, {6, 2, 5, 4, 1}, {2, 6, 1, 4, 5},
	{2, 6, 1, 5, 4}, {2, 6, 4, 1, 5}, {2, 6, 4, 5, 1}, {2, 6, 5, 1, 4}, {2, 6, 5, 4, 1},
	{6, 2, 1, 4, 5}, {6, 2, 1, 5, 4}, {6, 2, 4, 1, 5}, {6, 2, 4, 5, 1}, {6, 2, 5, 1, 4},
	{6, 2, 5, 4, 1}, {2, 6, 3, 4, 5}, {2, 6, 3, 5, 4}, {2, 6, 4, 3, 5}, {2, 6, 4, 5, 3},
	{2, 6, 5, 3, 4}, {2, 6, 5, 4, 3}, {6, 2, 3, 4, 5}, {6, 2, 3, 5, 4}, {6, 2, 4, 3, 5},
	{6, 2, 4, 5, 3}, {6, 2, 5, 3, 4}, {6, 2, 5, 4, 3}, {2, 6, 3, 4, 5}, {2, 6, 3, 5, 4},
	{2, 6, 4, 3, 5}, {2, 6, 4, 5, 3}, {2, 6, 5, 3, 4}, {2, 6, 5, 4, 3}, {6, 2, 3, 4, 5},
	{6, 2, 3, 5, 4}, {6, 2, 4, 3, 5}, {6, 2, 4, 5, 3}, {6, 2, 5, 3, 4}, {6, 2, 5, 4, 3},
	{3, 6, 0, 1, 4}, {3, 6, 0, 4, 1}, {3, 6, 1, 0, 4}, {3, 6, 1, 4, 0}, {3, 6, 4, 0, 1},
	{3, 6, 4, 1, 0}, {6, 3, 0, 1, 4}, {6, 3, 0, 4, 1}, {6, 3, 1, 0, 4}, {6, 3, 1, 4, 0},
	{6, 3, 4, 0, 1}, {6, 3, 4, 1, 0}, {3, 6, 0, 1, 4}, {3, 6, 0, 4, 1}, {3, 6, 1, 0, 4},
	{3, 6, 1, 4, 0}, {3, 6, 4, 0, 1}, {3, 6, 4, 1, 0}, {6, 3, 0, 1, 4}, {6, 3, 0, 4, 1},
	{6, 3, 1, 0, 4}, {6, 3, 1, 4, 0}, {6, 3, 4, 0, 1}, {6, 3, 4, 1, 0}, {3, 6, 0, 1, 5},
	{3, 6, 0, 5, 1}, {3, 6, 1, 0, 5}, {3, 6, 1, 5, 0}, {3, 6, 5, 0, 1}, {3, 6, 5, 1, 0},
	{6, 3, 0, 1, 5}, {6, 3, 0, 5, 1}, {6, 3, 1, 0, 5}, {6, 3, 1, 5, 0}, {6, 3, 5, 0, 1},
	{6, 3, 5, 1, 0}, {3, 6, 0, 1, 5}, {3, 6, 0, 5, 1}, {3, 6, 1, 0, 5}, {3, 6, 1, 5, 0},
	{3, 6, 5, 0, 1}, {3, 6, 5, 1, 0}, {6, 3, 0, 1, 5}, {6, 3, 0, 5, 1}, {6, 3, 1, 0, 5},
	{6, 3, 1, 5, 0}, {6, 3, 5, 0, 1}, {6, 3, 5, 1, 0}, {3, 6, 0, 4, 5}, {3, 6, 0, 5, 4},
	{3, 6, 4, 0, 5}, {3, 6, 4, 5, 0}, {3, 6, 5, 0, 4}, {3, 6, 5, 4, 0}, {6, 3, 0, 4, 5},
	{6, 3, 0, 5, 4}, {6, 3, 4, 0, 5}, {6, 3, 4, 5, 0}, {6, 3, 5, 0, 4}, {6, 3, 5, 4, 0},
	{3, 6, 0, 4, 5}, {3, 6, 0, 5, 4}, {3, 6, 4, 0, 5}, {3, 6, 4, 5, 0}, {3, 6, 5, 0, 4},
	{3, 6, 5, 4, 0}, {6, 3, 0, 4, 5}, {6, 3, 0, 5, 4}, {6, 3, 4, 0, 5}, {6, 3, 4, 5, 0},
	{6, 3, 5, 0, 4}, {6, 3, 5, 4, 0}, {3, 6, 1, 4, 5}, {3, 6, 1, 5, 4}, {3, 6, 4, 1, 5},
	{3, 6, 4, 5, 1}, {3, 6, 5, 1, 4}, {3, 6, 5, 4, 1}, {6, 3, 1, 4, 5}, {6, 3, 1, 5, 4},
	{6, 3, 4, 1, 5}, {6, 3, 4, 5, 1}, {6, 3, 5, 1, 4}, {6, 3, 5, 4, 1}, {3, 6, 1, 4, 5},
	{3, 6, 1, 5, 4}, {3, 6, 4, 1, 5}, {3, 6, 4, 5, 1}, {3, 6, 5, 1, 4}, {3, 6, 5, 4, 1},
	{6, 3, 1, 4, 5}, {6, 3, 1, 5, 4}, {6, 3, 4, 1, 5}, {6, 3, 4, 5, 1}, {6, 3, 5, 1, 4},
	{6, 3, 5, 4, 1},
}
