package entity

// DefaultPositionFormat is the status bar cursor position template.
// {line} is 1-based, {column} is 0-based and counts characters.
const DefaultPositionFormat = "Line: {line}, Col: {column}"
