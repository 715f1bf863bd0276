// Command vec3 is a small calculator over the vec3 library.
//
// It evaluates one vector operation per invocation and prints the result in
// the requested fmt verb, applied to every component:
//
//	vec3 add 1,2,3 4,5,6                  # [5, 7, 9]
//	vec3 -type int -fmt x or 0xf0,1,2 15,0,0   # [ff, 1, 2]
//	vec3 cross 1,0,0 0,1,0                # [0, 0, 1]
//	vec3 reflect 1,-1,0 0,1,0             # [1, 1, 0]
//	vec3 -n 3 -seed 42 sphere             # three points inside the unit ball
//
// Vectors are written as three comma or space separated components,
// optionally wrapped in brackets ("[1, 2, 3]"). Integer components accept Go
// literal prefixes (0x, 0o, 0b).
//
// # Operations
//
// Every component type:
//
//	add sub mul div emul      componentwise, two vectors
//	dot                       scalar, two vectors
//	cross                     two vectors
//	neg lensq                 one vector
//	get                       component -index of one vector (errors outside 0..2)
//	rem                       remainder (% for int, math.Mod for floats)
//
// int only:
//
//	not                       one vector
//	and or xor andnot         two vectors
//	shl shr                   one vector, shifted by -shift
//
// float32 / float64 only:
//
//	len norm nearzero         one vector
//	reflect                   vector and unit normal
//	sphere disk unit          -n samples from a PCG generator seeded with -seed
//
// # Configuration
//
// Settings are layered: built-in defaults, then the YAML file given by
// -config, then VEC3_* environment variables, then explicit flags.
//
//	type: float64      # VEC3_TYPE      int | float32 | float64
//	format: v          # VEC3_FORMAT    fmt verb without the %
//	seed: 1            # VEC3_SEED
//	samples: 1         # VEC3_SAMPLES
//	shift: 0           # VEC3_SHIFT
//	index: 0           # VEC3_INDEX
//	log_level: warn    # VEC3_LOG_LEVEL logrus level
//	warn_after: 64     # VEC3_WARN_AFTER rejection count that triggers a warning
//
// Exit codes: 0 success, 1 evaluation error, 2 usage or configuration error.
package main
