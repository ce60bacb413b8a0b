package web

import "embed"

// StaticFS 嵌入的前端静态资源
//
//go:embed index.html
var StaticFS embed.FS
