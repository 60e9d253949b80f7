package curriculum

func init() {
	c = buildCatalog(seedModules(), seedSubtopics(), seedTopics())
	if err := Validate(); err != nil {
		panic(err)
	}
}

func seedModules() []Module {
	return []Module{
		{ID: "fundamentals", Name: "Programming Fundamentals"},
		{ID: "data-structures", Name: "Data Structures"},
		{ID: "algorithms", Name: "Algorithms"},
		{ID: "concurrency", Name: "Concurrency"},
	}
}

func seedSubtopics() []Subtopic {
	return []Subtopic{
		{ID: "variables-and-types", Name: "Variables & Types", ModuleID: "fundamentals"},
		{ID: "control-flow", Name: "Control Flow", ModuleID: "fundamentals"},
		{ID: "functions", Name: "Functions", ModuleID: "fundamentals"},
		{ID: "collections", Name: "Collections", ModuleID: "data-structures"},
		{ID: "text", Name: "Text Processing", ModuleID: "data-structures"},
		{ID: "searching-sorting", Name: "Searching & Sorting", ModuleID: "algorithms"},
		{ID: "recursion", Name: "Recursion", ModuleID: "algorithms"},
		{ID: "goroutines-channels", Name: "Goroutines & Channels", ModuleID: "concurrency"},
		{ID: "synchronization", Name: "Synchronization", ModuleID: "concurrency"},
	}
}

// seedTopics returns the problem archetypes in curriculum order. The slice
// order IS the flattened sequence the adaptive run walks through.
func seedTopics() []Topic {
	return []Topic{
		// Fundamentals
		{
			ID: "variable-declaration", Name: "Variable Declaration",
			Summary:  "Declaring and initializing variables with appropriate types",
			ModuleID: "fundamentals", SubtopicID: "variables-and-types",
			Keywords: []string{"var", "short declaration", "zero value"},
		},
		{
			ID: "type-conversion", Name: "Type Conversion",
			Summary:  "Converting between numeric and string types safely",
			ModuleID: "fundamentals", SubtopicID: "variables-and-types",
			Keywords: []string{"cast", "int to float", "strconv"},
		},
		{
			ID: "constants-literals", Name: "Constants & Literals",
			Summary:  "Typed and untyped constants, literal forms",
			ModuleID: "fundamentals", SubtopicID: "variables-and-types",
			Keywords: []string{"const", "iota", "literal"},
		},
		{
			ID: "conditionals", Name: "Conditionals",
			Summary:  "Branching with if/else and boolean expressions",
			ModuleID: "fundamentals", SubtopicID: "control-flow",
			Keywords: []string{"if", "else", "boolean logic"},
		},
		{
			ID: "loops", Name: "Loops",
			Summary:  "Iteration patterns, loop bounds, and early exit",
			ModuleID: "fundamentals", SubtopicID: "control-flow",
			Keywords: []string{"for", "break", "continue", "off-by-one"},
		},
		{
			ID: "switch-dispatch", Name: "Switch Dispatch",
			Summary:  "Multi-way branching with switch statements",
			ModuleID: "fundamentals", SubtopicID: "control-flow",
			Keywords: []string{"switch", "case", "fallthrough"},
		},
		{
			ID: "function-basics", Name: "Function Basics",
			Summary:  "Defining and calling functions with parameters",
			ModuleID: "fundamentals", SubtopicID: "functions",
			Keywords: []string{"parameters", "arguments", "return"},
		},
		{
			ID: "multiple-returns", Name: "Multiple Return Values",
			Summary:  "Functions returning a value and an error",
			ModuleID: "fundamentals", SubtopicID: "functions",
			Keywords: []string{"error return", "tuple", "named returns"},
		},
		{
			ID: "closures", Name: "Closures",
			Summary:  "Functions capturing enclosing scope",
			ModuleID: "fundamentals", SubtopicID: "functions",
			Keywords: []string{"closure", "capture", "function value"},
		},

		// Data structures
		{
			ID: "array-indexing", Name: "Array Indexing",
			Summary:  "Fixed-size arrays and bounds",
			ModuleID: "data-structures", SubtopicID: "collections",
			Keywords: []string{"array", "index", "bounds"},
		},
		{
			ID: "slice-operations", Name: "Slice Operations",
			Summary:  "Appending, slicing, and copying slices",
			ModuleID: "data-structures", SubtopicID: "collections",
			Keywords: []string{"slice", "append", "len", "cap"},
		},
		{
			ID: "map-lookup", Name: "Map Lookup",
			Summary:  "Key-value access, the comma-ok idiom, iteration",
			ModuleID: "data-structures", SubtopicID: "collections",
			Keywords: []string{"map", "comma ok", "delete"},
		},
		{
			ID: "string-manipulation", Name: "String Manipulation",
			Summary:  "Building, joining, and transforming strings",
			ModuleID: "data-structures", SubtopicID: "text",
			Keywords: []string{"strings package", "builder", "join"},
		},
		{
			ID: "string-parsing", Name: "String Parsing",
			Summary:  "Splitting and extracting values from text",
			ModuleID: "data-structures", SubtopicID: "text",
			Keywords: []string{"split", "fields", "trim", "parse"},
		},

		// Algorithms
		{
			ID: "linear-search", Name: "Linear Search",
			Summary:  "Scanning a collection for a matching element",
			ModuleID: "algorithms", SubtopicID: "searching-sorting",
			Keywords: []string{"scan", "predicate", "first match"},
		},
		{
			ID: "binary-search", Name: "Binary Search",
			Summary:  "Halving search on sorted data",
			ModuleID: "algorithms", SubtopicID: "searching-sorting",
			Keywords: []string{"sorted", "midpoint", "log n"},
		},
		{
			ID: "sorting-basics", Name: "Sorting Basics",
			Summary:  "Ordering data with comparison functions",
			ModuleID: "algorithms", SubtopicID: "searching-sorting",
			Keywords: []string{"sort", "comparator", "stability"},
		},
		{
			ID: "recursive-sums", Name: "Recursive Accumulation",
			Summary:  "Base cases and recursive accumulation",
			ModuleID: "algorithms", SubtopicID: "recursion",
			Keywords: []string{"base case", "recursion", "accumulator"},
		},
		{
			ID: "divide-and-conquer", Name: "Divide & Conquer",
			Summary:  "Splitting problems into independent halves",
			ModuleID: "algorithms", SubtopicID: "recursion",
			Keywords: []string{"split", "merge", "subproblem"},
		},

		// Concurrency
		{
			ID: "goroutine-basics", Name: "Goroutine Basics",
			Summary:  "Launching and reasoning about goroutines",
			ModuleID: "concurrency", SubtopicID: "goroutines-channels",
			Keywords: []string{"go statement", "scheduling", "lifetime"},
		},
		{
			ID: "channel-send-receive", Name: "Channel Send & Receive",
			Summary:  "Unbuffered and buffered channel semantics",
			ModuleID: "concurrency", SubtopicID: "goroutines-channels",
			Keywords: []string{"channel", "blocking", "close"},
		},
		{
			ID: "select-multiplexing", Name: "Select Multiplexing",
			Summary:  "Waiting on multiple channel operations",
			ModuleID: "concurrency", SubtopicID: "goroutines-channels",
			Keywords: []string{"select", "default", "timeout"},
		},
		{
			ID: "mutex-counters", Name: "Mutex-Guarded State",
			Summary:  "Protecting shared state with mutexes",
			ModuleID: "concurrency", SubtopicID: "synchronization",
			Keywords: []string{"mutex", "critical section", "race"},
		},
		{
			ID: "waitgroup-fanout", Name: "WaitGroup Fan-Out",
			Summary:  "Coordinating a batch of workers",
			ModuleID: "concurrency", SubtopicID: "synchronization",
			Keywords: []string{"waitgroup", "fan-out", "worker pool"},
		},
	}
}
