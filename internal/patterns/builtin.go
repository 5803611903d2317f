package patterns

func init() {
	Register(Pattern{Name: "empty", Description: "all cells dead", Apply: func(Board, Options) {}})
	Register(Pattern{Name: "random", Description: "approximate random fill at the configured density", Apply: random})
	Register(Pattern{Name: "block", Description: "2x2 still life at (1,1)", Apply: block})
	Register(Pattern{Name: "blinker", Description: "vertical period-2 oscillator near the top-left", Apply: blinker})
	Register(Pattern{Name: "blinker-corner", Description: "horizontal period-2 oscillator near the bottom-right", Apply: blinkerCorner})
	Register(Pattern{Name: "square", Description: "3x3 filled square in the top-left corner", Apply: square})
	Register(Pattern{Name: "checkerboard", Description: "alternating cells", Apply: checkerboard})
	Register(Pattern{Name: "diagonal", Description: "line from the top-left corner", Apply: diagonal})
	Register(Pattern{Name: "cross", Description: "both diagonals", Apply: cross})
	Register(Pattern{Name: "border", Description: "every edge cell alive", Apply: border})
}

func random(b Board, opts Options) {
	if opts.RNG == nil {
		return
	}
	density := opts.Density
	if density <= 0 {
		density = DefaultDensity
	}
	target := int(density * float64(b.Size().Cells()))
	b.SeedRandom(opts.RNG, target)
}

func block(b Board, _ Options) {
	set(b, 1, 1)
	set(b, 1, 2)
	set(b, 2, 1)
	set(b, 2, 2)
}

func blinker(b Board, _ Options) {
	set(b, 2, 2)
	set(b, 2, 3)
	set(b, 2, 4)
}

func blinkerCorner(b Board, _ Options) {
	s := b.Size()
	y := s.H - 3
	for x := s.W - 4; x < s.W-1; x++ {
		set(b, x, y)
	}
}

func square(b Board, _ Options) {
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			set(b, x, y)
		}
	}
}

func checkerboard(b Board, _ Options) {
	s := b.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if (x+y)%2 == 0 {
				set(b, x, y)
			}
		}
	}
}

func diagonal(b Board, _ Options) {
	s := b.Size()
	for i := 0; i < s.W && i < s.H; i++ {
		set(b, i, i)
	}
}

func cross(b Board, opts Options) {
	diagonal(b, opts)
	s := b.Size()
	for x, y := 0, s.H-1; x < s.W && y >= 0; x, y = x+1, y-1 {
		set(b, x, y)
	}
}

func border(b Board, _ Options) {
	s := b.Size()
	for x := 0; x < s.W; x++ {
		set(b, x, 0)
		set(b, x, s.H-1)
	}
	for y := 0; y < s.H; y++ {
		set(b, 0, y)
		set(b, s.W-1, y)
	}
}
