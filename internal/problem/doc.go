// Package problem defines planning problem files and their loading.
//
// A problem names the initial facts, the goal facts, and the operators the
// solver may use:
//
//	{
//	  "start":  ["son at home", "car needs battery"],
//	  "finish": ["son at school"],
//	  "ops": [
//	    {
//	      "action":   "drive son to school",
//	      "preconds": ["son at home", "car works"],
//	      "add":      ["son at school"],
//	      "delete":   ["son at home"]
//	    }
//	  ]
//	}
//
// Problems load from JSON (strict: unknown fields are rejected) or YAML
// with the same field names, selected by file extension. Validation runs
// before the solver ever sees the problem, so a malformed definition fails
// fast instead of surfacing mid-search.
package problem
