package curriculum

// Seed returns the built-in drawing curriculum. It is validated like any
// other pack; MustSeedGraph panics on a broken seed because that is a
// programming error, not user input.
func Seed() Content {
	return Content{
		Sections: seedSections(),
		Lessons:  seedLessons(),
	}
}

// MustSeedGraph builds the graph from the seed content.
func MustSeedGraph() *Graph {
	g, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return g
}

func seedSections() []Section {
	return []Section{
		{
			ID:    "foundations",
			Title: "Foundations",
			Units: []Unit{
				{
					ID:    "line-control",
					Title: "Line Control",
					LessonIDs: []string{
						"warmup-strokes", "straight-lines", "curved-lines", "line-confidence",
					},
				},
				{
					ID:    "basic-shapes",
					Title: "Basic Shapes",
					LessonIDs: []string{
						"circles-ovals", "squares-triangles", "shape-builds",
					},
				},
			},
		},
		{
			ID:    "form-and-light",
			Title: "Form & Light",
			Units: []Unit{
				{
					ID:    "solid-forms",
					Title: "Solid Forms",
					LessonIDs: []string{
						"form-cubes", "form-spheres", "form-cylinders",
					},
				},
				{
					ID:    "light-shadow",
					Title: "Light & Shadow",
					LessonIDs: []string{
						"light-logic", "core-shadows", "cast-shadows", "shading-challenge",
					},
				},
			},
		},
		{
			ID:    "space-and-depth",
			Title: "Space & Depth",
			Units: []Unit{
				{
					ID:    "perspective-basics",
					Title: "Perspective Basics",
					LessonIDs: []string{
						"one-point", "two-point", "ellipses-depth",
					},
				},
				{
					ID:    "scenes",
					Title: "Scenes",
					LessonIDs: []string{
						"room-interior", "street-scene",
					},
				},
			},
		},
	}
}

func seedLessons() []Lesson {
	return []Lesson{
		{
			ID:            "warmup-strokes",
			Title:         "Warmup Strokes",
			Description:   "Loosen up with ghosted strokes and controlled scribbles.",
			Type:          TypePractice,
			Category:      CategoryLineWork,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 10,
			XPReward:      50,
			Steps: []Step{
				{ID: "ghosting", Title: "Ghosted strokes", Instructions: "Fill half a page with ghosted horizontal strokes from the shoulder.", DurationMins: 5, Required: true},
				{ID: "scribble-control", Title: "Scribble control", Instructions: "Fill shapes with even scribble tone without crossing the outline.", DurationMins: 5, Required: true},
			},
			Unlocks: []string{"straight-lines"},
		},
		{
			ID:            "straight-lines",
			Title:         "Straight Lines",
			Description:   "Confident straight lines between fixed points.",
			Type:          TypePractice,
			Category:      CategoryLineWork,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			XPReward:      50,
			Steps: []Step{
				{ID: "point-to-point", Title: "Point to point", Instructions: "Draw 30 lines connecting pairs of dots, one stroke each.", DurationMins: 8, Required: true},
				{ID: "parallel-sets", Title: "Parallel sets", Instructions: "Draw sets of evenly spaced parallel lines at varied angles.", DurationMins: 7, Required: true},
			},
			Prerequisites: []string{"warmup-strokes"},
			Unlocks:       []string{"curved-lines"},
		},
		{
			ID:            "curved-lines",
			Title:         "Curved Lines",
			Description:   "Smooth arcs, S-curves, and flowing line weight.",
			Type:          TypePractice,
			Category:      CategoryLineWork,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			XPReward:      60,
			Steps: []Step{
				{ID: "arcs", Title: "Arcs", Instructions: "Draw nested arcs with consistent spacing.", DurationMins: 5, Required: true},
				{ID: "s-curves", Title: "S-curves", Instructions: "Draw flowing S-curves through three guide dots.", DurationMins: 5, Required: true},
				{ID: "line-weight", Title: "Line weight", Instructions: "Repeat the curves varying pressure from light to heavy.", DurationMins: 5, Required: false},
			},
			Prerequisites: []string{"straight-lines"},
			Unlocks:       []string{"line-confidence", "circles-ovals"},
		},
		{
			ID:            "line-confidence",
			Title:         "Line Confidence Challenge",
			Description:   "A timed gauntlet of straight and curved strokes.",
			Type:          TypeChallenge,
			Category:      CategoryLineWork,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 10,
			XPReward:      100,
			Steps: []Step{
				{ID: "gauntlet", Title: "The gauntlet", Instructions: "Complete the mixed stroke sheet in ten minutes without lifting corrections.", DurationMins: 10, Required: true, Threshold: 0.80},
			},
			Prerequisites: []string{"curved-lines"},
		},
		{
			ID:            "circles-ovals",
			Title:         "Circles & Ovals",
			Description:   "Freehand circles and ellipses of every proportion.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			XPReward:      60,
			Steps: []Step{
				{ID: "circle-page", Title: "Circle page", Instructions: "Fill a page with circles of varied sizes, one confident stroke each.", DurationMins: 8, Required: true},
				{ID: "ellipse-degrees", Title: "Ellipse degrees", Instructions: "Draw ellipses from near-circular to near-flat.", DurationMins: 7, Required: true},
			},
			Prerequisites: []string{"curved-lines"},
			Unlocks:       []string{"squares-triangles"},
		},
		{
			ID:            "squares-triangles",
			Title:         "Squares & Triangles",
			Description:   "Clean rectilinear shapes with even proportions.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 12,
			XPReward:      60,
			Steps: []Step{
				{ID: "square-grid", Title: "Square grid", Instructions: "Draw a grid of squares without a ruler, keeping rows aligned.", DurationMins: 6, Required: true},
				{ID: "triangle-mix", Title: "Triangle mix", Instructions: "Draw equilateral, isosceles, and scalene triangles from memory.", DurationMins: 6, Required: true},
			},
			Prerequisites: []string{"circles-ovals"},
			Unlocks:       []string{"shape-builds"},
		},
		{
			ID:            "shape-builds",
			Title:         "Shape Builds",
			Description:   "Combine simple shapes into recognizable objects.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			XPReward:      80,
			Steps: []Step{
				{ID: "object-blocking", Title: "Object blocking", Instructions: "Block in five household objects using only circles, boxes, and triangles.", DurationMins: 12, Required: true},
				{ID: "refine-pass", Title: "Refine pass", Instructions: "Pick two blockings and refine their contours.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"squares-triangles"},
			Unlocks:       []string{"form-cubes"},
		},
		{
			ID:            "form-cubes",
			Title:         "Cubes & Boxes",
			Description:   "Turn flat squares into believable boxes in space.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			XPReward:      80,
			Steps: []Step{
				{ID: "freehand-boxes", Title: "Freehand boxes", Instructions: "Draw 20 boxes rotated freely in space.", DurationMins: 12, Required: true},
				{ID: "box-stack", Title: "Box stack", Instructions: "Stack boxes of different sizes into a stable pile.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"shape-builds"},
			Unlocks:       []string{"form-spheres", "one-point"},
		},
		{
			ID:            "form-spheres",
			Title:         "Spheres",
			Description:   "Spheres with contour lines that describe the surface.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 15,
			XPReward:      70,
			Steps: []Step{
				{ID: "contoured-spheres", Title: "Contoured spheres", Instructions: "Draw spheres wrapped with latitude and longitude contour lines.", DurationMins: 9, Required: true},
				{ID: "overlap-study", Title: "Overlap study", Instructions: "Draw a cluster of overlapping spheres with correct occlusion.", DurationMins: 6, Required: true},
			},
			Prerequisites: []string{"form-cubes"},
			Unlocks:       []string{"form-cylinders"},
		},
		{
			ID:            "form-cylinders",
			Title:         "Cylinders & Cones",
			Description:   "Cylinders and cones built on ellipses and a minor axis.",
			Type:          TypePractice,
			Category:      CategoryShapesForm,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 18,
			XPReward:      70,
			Steps: []Step{
				{ID: "axis-cylinders", Title: "Axis cylinders", Instructions: "Draw cylinders around freely rotated minor axes.", DurationMins: 10, Required: true},
				{ID: "cone-family", Title: "Cone family", Instructions: "Draw cones from shallow to steep sharing a base ellipse.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"form-spheres"},
			Unlocks:       []string{"light-logic", "ellipses-depth"},
		},
		{
			ID:            "light-logic",
			Title:         "Light Logic",
			Description:   "Where light, halftone, and shadow live on a form.",
			Type:          TypeTheory,
			Category:      CategoryLightShade,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 15,
			XPReward:      70,
			Steps: []Step{
				{ID: "value-scale", Title: "Value scale", Instructions: "Render a nine-step value scale with even transitions.", DurationMins: 8, Required: true},
				{ID: "sphere-zones", Title: "Sphere zones", Instructions: "Label light, halftone, core shadow, and reflected light on a sphere.", DurationMins: 7, Required: true},
			},
			Prerequisites: []string{"form-cylinders"},
			Unlocks:       []string{"core-shadows"},
		},
		{
			ID:            "core-shadows",
			Title:         "Core Shadows",
			Description:   "Model form with the core shadow and reflected light.",
			Type:          TypePractice,
			Category:      CategoryLightShade,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			XPReward:      80,
			Steps: []Step{
				{ID: "shaded-forms", Title: "Shaded forms", Instructions: "Shade a sphere, cube, and cylinder under one light source.", DurationMins: 14, Required: true},
				{ID: "turn-study", Title: "Turn study", Instructions: "Re-shade the sphere with the light moved 90 degrees.", DurationMins: 6, Required: true},
			},
			Prerequisites: []string{"light-logic"},
			Unlocks:       []string{"cast-shadows"},
		},
		{
			ID:            "cast-shadows",
			Title:         "Cast Shadows",
			Description:   "Project believable cast shadows onto the ground plane.",
			Type:          TypePractice,
			Category:      CategoryLightShade,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 18,
			XPReward:      80,
			Steps: []Step{
				{ID: "ground-shadows", Title: "Ground shadows", Instructions: "Cast shadows from simple forms onto a flat ground.", DurationMins: 10, Required: true},
				{ID: "wall-bend", Title: "Wall bend", Instructions: "Bend a cast shadow up a wall behind the form.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"core-shadows"},
			Unlocks:       []string{"shading-challenge"},
		},
		{
			ID:            "shading-challenge",
			Title:         "Still Life Shading Challenge",
			Description:   "A full still life rendered from direct observation.",
			Type:          TypeChallenge,
			Category:      CategoryLightShade,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 40,
			XPReward:      150,
			Steps: []Step{
				{ID: "still-life", Title: "Still life", Instructions: "Arrange three objects under a single lamp and render the full value range.", DurationMins: 40, Required: true, Threshold: 0.80},
			},
			Prerequisites: []string{"cast-shadows"},
		},
		{
			ID:            "one-point",
			Title:         "One-Point Perspective",
			Description:   "Boxes and rooms converging on a single vanishing point.",
			Type:          TypePractice,
			Category:      CategoryPerspective,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			XPReward:      80,
			Steps: []Step{
				{ID: "vp-boxes", Title: "Vanishing point boxes", Instructions: "Draw boxes above, below, and beside a single vanishing point.", DurationMins: 12, Required: true},
				{ID: "hallway", Title: "Hallway", Instructions: "Construct a simple hallway with door and window openings.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"form-cubes"},
			Unlocks:       []string{"two-point"},
		},
		{
			ID:            "two-point",
			Title:         "Two-Point Perspective",
			Description:   "Corner views with two vanishing points on the horizon.",
			Type:          TypePractice,
			Category:      CategoryPerspective,
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			XPReward:      90,
			Steps: []Step{
				{ID: "corner-boxes", Title: "Corner boxes", Instructions: "Draw boxes seen corner-on with both vanishing points off the page.", DurationMins: 15, Required: true},
				{ID: "building-block", Title: "Building block", Instructions: "Construct a simple building with a cut-in doorway.", DurationMins: 10, Required: true},
			},
			Prerequisites: []string{"one-point"},
			Unlocks:       []string{"ellipses-depth", "room-interior"},
		},
		{
			ID:            "ellipses-depth",
			Title:         "Ellipses in Perspective",
			Description:   "Circular forms foreshortened correctly in space.",
			Type:          TypePractice,
			Category:      CategoryPerspective,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 20,
			XPReward:      90,
			Steps: []Step{
				{ID: "plotted-ellipses", Title: "Plotted ellipses", Instructions: "Plot ellipses inside perspective squares at varied depths.", DurationMins: 12, Required: true},
				{ID: "tabletop-scene", Title: "Tabletop scene", Instructions: "Draw mugs and plates on a table in two-point perspective.", DurationMins: 8, Required: true},
			},
			Prerequisites: []string{"two-point", "form-cylinders"},
		},
		{
			ID:            "room-interior",
			Title:         "Room Interior",
			Description:   "A furnished room built from perspective construction.",
			Type:          TypePractice,
			Category:      CategoryPerspective,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 35,
			XPReward:      110,
			Steps: []Step{
				{ID: "room-shell", Title: "Room shell", Instructions: "Construct the walls, floor grid, and ceiling of a room.", DurationMins: 15, Required: true},
				{ID: "furnishing", Title: "Furnishing", Instructions: "Place at least four furniture forms on the floor grid.", DurationMins: 20, Required: true},
			},
			Prerequisites: []string{"two-point"},
			Unlocks:       []string{"street-scene"},
		},
		{
			ID:            "street-scene",
			Title:         "Street Corner Challenge",
			Description:   "A complete street corner scene with depth and light.",
			Type:          TypeChallenge,
			Category:      CategoryPerspective,
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 60,
			XPReward:      150,
			Steps: []Step{
				{ID: "street-corner", Title: "Street corner", Instructions: "Draw a two-point street corner with buildings, a lamp post, and cast shadows.", DurationMins: 60, Required: true, Threshold: 0.80},
			},
			Prerequisites: []string{"room-interior"},
		},
	}
}
