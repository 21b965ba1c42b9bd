// Package export renders a decoded yasunori document.
//
// # Markdown
//
// [FormatDocument] produces the whole document:
//
//	<markdown_header>
//	| id | date | senpan | place | title |
//	|----|------|--------|-------|-------|
//	| [1](#hello-world-2024-09-30) | 2024-09-30 | None | vim-jp | Hello World! |
//
//	## Contents
//
//	### Hello World! (2024-09-30)
//
//	vim-jp by None
//
//	```markdown
//	...
//	```
//
//	<meta>
//
// [FormatTable] and [FormatSections] expose the two halves. Rows and
// sections follow the entry order of the config; nothing is sorted.
//
// # Layout Options
//
// [Options] selects between the layouts the tool has produced over time:
//   - IDs: show the id column always, never, or when every entry has an id
//   - Weekday: display dates as "2024-09-30 Mon"
//   - FenceContent: wrap bodies in a ```markdown block
//
// # JSON
//
// [FormatJSON] writes the canonical model with each entry's anchor, for
// tools that want the data rather than the document.
package export
