// Package readme renders profile data into GitHub profile README markdown.
//
// Render is a pure function from [profile.Data] to markdown. It emits the
// header and then, in a fixed order, each section whose data is present:
//
//	# Name
//
//	**Tagline**
//
//
//	## Connect with Me
//	## Profile Views
//	## About Me
//	## Skills
//	## GitHub Stats
//	## Featured Projects
//	## Fun Fact
//
// User-supplied names, taglines and project text are markdown-escaped. About
// and fun fact text is trusted and passed through verbatim. Image URLs are
// restricted to http, https and data schemes.
//
// ShrinkIcons is the post-processing pass that turns skill icons, which
// Render emits as markdown images tagged with a "skill:" alt prefix, into
// fixed-size <img> tags. Generate combines both steps.
package readme
