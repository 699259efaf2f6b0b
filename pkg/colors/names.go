package colors

// cssColors is the standard table of 147 CSS color names. It is initialized
// once and never mutated; all validation reads it concurrently without
// locking.
var cssColors = map[string]RGBA{
	"aliceblue":            {0xF0, 0xF8, 0xFF, 1},
	"antiquewhite":         {0xFA, 0xEB, 0xD7, 1},
	"aqua":                 {0x00, 0xFF, 0xFF, 1},
	"aquamarine":           {0x7F, 0xFF, 0xD4, 1},
	"azure":                {0xF0, 0xFF, 0xFF, 1},
	"beige":                {0xF5, 0xF5, 0xDC, 1},
	"bisque":               {0xFF, 0xE4, 0xC4, 1},
	"black":                {0x00, 0x00, 0x00, 1},
	"blanchedalmond":       {0xFF, 0xEB, 0xCD, 1},
	"blue":                 {0x00, 0x00, 0xFF, 1},
	"blueviolet":           {0x8A, 0x2B, 0xE2, 1},
	"brown":                {0xA5, 0x2A, 0x2A, 1},
	"burlywood":            {0xDE, 0xB8, 0x87, 1},
	"cadetblue":            {0x5F, 0x9E, 0xA0, 1},
	"chartreuse":           {0x7F, 0xFF, 0x00, 1},
	"chocolate":            {0xD2, 0x69, 0x1E, 1},
	"coral":                {0xFF, 0x7F, 0x50, 1},
	"cornflowerblue":       {0x64, 0x95, 0xED, 1},
	"cornsilk":             {0xFF, 0xF8, 0xDC, 1},
	"crimson":              {0xDC, 0x14, 0x3C, 1},
	"cyan":                 {0x00, 0xFF, 0xFF, 1},
	"darkblue":             {0x00, 0x00, 0x8B, 1},
	"darkcyan":             {0x00, 0x8B, 0x8B, 1},
	"darkgoldenrod":        {0xB8, 0x86, 0x0B, 1},
	"darkgray":             {0xA9, 0xA9, 0xA9, 1},
	"darkgreen":            {0x00, 0x64, 0x00, 1},
	"darkgrey":             {0xA9, 0xA9, 0xA9, 1},
	"darkkhaki":            {0xBD, 0xB7, 0x6B, 1},
	"darkmagenta":          {0x8B, 0x00, 0x8B, 1},
	"darkolivegreen":       {0x55, 0x6B, 0x2F, 1},
	"darkorange":           {0xFF, 0x8C, 0x00, 1},
	"darkorchid":           {0x99, 0x32, 0xCC, 1},
	"darkred":              {0x8B, 0x00, 0x00, 1},
	"darksalmon":           {0xE9, 0x96, 0x7A, 1},
	"darkseagreen":         {0x8F, 0xBC, 0x8F, 1},
	"darkslateblue":        {0x48, 0x3D, 0x8B, 1},
	"darkslategray":        {0x2F, 0x4F, 0x4F, 1},
	"darkslategrey":        {0x2F, 0x4F, 0x4F, 1},
	"darkturquoise":        {0x00, 0xCE, 0xD1, 1},
	"darkviolet":           {0x94, 0x00, 0xD3, 1},
	"deeppink":             {0xFF, 0x14, 0x93, 1},
	"deepskyblue":          {0x00, 0xBF, 0xFF, 1},
	"dimgray":              {0x69, 0x69, 0x69, 1},
	"dimgrey":              {0x69, 0x69, 0x69, 1},
	"dodgerblue":           {0x1E, 0x90, 0xFF, 1},
	"firebrick":            {0xB2, 0x22, 0x22, 1},
	"floralwhite":          {0xFF, 0xFA, 0xF0, 1},
	"forestgreen":          {0x22, 0x8B, 0x22, 1},
	"fuchsia":              {0xFF, 0x00, 0xFF, 1},
	"gainsboro":            {0xDC, 0xDC, 0xDC, 1},
	"ghostwhite":           {0xF8, 0xF8, 0xFF, 1},
	"gold":                 {0xFF, 0xD7, 0x00, 1},
	"goldenrod":            {0xDA, 0xA5, 0x20, 1},
	"gray":                 {0x80, 0x80, 0x80, 1},
	"green":                {0x00, 0x80, 0x00, 1},
	"greenyellow":          {0xAD, 0xFF, 0x2F, 1},
	"grey":                 {0x80, 0x80, 0x80, 1},
	"honeydew":             {0xF0, 0xFF, 0xF0, 1},
	"hotpink":              {0xFF, 0x69, 0xB4, 1},
	"indianred":            {0xCD, 0x5C, 0x5C, 1},
	"indigo":               {0x4B, 0x00, 0x82, 1},
	"ivory":                {0xFF, 0xFF, 0xF0, 1},
	"khaki":                {0xF0, 0xE6, 0x8C, 1},
	"lavender":             {0xE6, 0xE6, 0xFA, 1},
	"lavenderblush":        {0xFF, 0xF0, 0xF5, 1},
	"lawngreen":            {0x7C, 0xFC, 0x00, 1},
	"lemonchiffon":         {0xFF, 0xFA, 0xCD, 1},
	"lightblue":            {0xAD, 0xD8, 0xE6, 1},
	"lightcoral":           {0xF0, 0x80, 0x80, 1},
	"lightcyan":            {0xE0, 0xFF, 0xFF, 1},
	"lightgoldenrodyellow": {0xFA, 0xFA, 0xD2, 1},
	"lightgray":            {0xD3, 0xD3, 0xD3, 1},
	"lightgreen":           {0x90, 0xEE, 0x90, 1},
	"lightgrey":            {0xD3, 0xD3, 0xD3, 1},
	"lightpink":            {0xFF, 0xB6, 0xC1, 1},
	"lightsalmon":          {0xFF, 0xA0, 0x7A, 1},
	"lightseagreen":        {0x20, 0xB2, 0xAA, 1},
	"lightskyblue":         {0x87, 0xCE, 0xFA, 1},
	"lightslategray":       {0x77, 0x88, 0x99, 1},
	"lightslategrey":       {0x77, 0x88, 0x99, 1},
	"lightsteelblue":       {0xB0, 0xC4, 0xDE, 1},
	"lightyellow":          {0xFF, 0xFF, 0xE0, 1},
	"lime":                 {0x00, 0xFF, 0x00, 1},
	"limegreen":            {0x32, 0xCD, 0x32, 1},
	"linen":                {0xFA, 0xF0, 0xE6, 1},
	"magenta":              {0xFF, 0x00, 0xFF, 1},
	"maroon":               {0x80, 0x00, 0x00, 1},
	"mediumaquamarine":     {0x66, 0xCD, 0xAA, 1},
	"mediumblue":           {0x00, 0x00, 0xCD, 1},
	"mediumorchid":         {0xBA, 0x55, 0xD3, 1},
	"mediumpurple":         {0x93, 0x70, 0xDB, 1},
	"mediumseagreen":       {0x3C, 0xB3, 0x71, 1},
	"mediumslateblue":      {0x7B, 0x68, 0xEE, 1},
	"mediumspringgreen":    {0x00, 0xFA, 0x9A, 1},
	"mediumturquoise":      {0x48, 0xD1, 0xCC, 1},
	"mediumvioletred":      {0xC7, 0x15, 0x85, 1},
	"midnightblue":         {0x19, 0x19, 0x70, 1},
	"mintcream":            {0xF5, 0xFF, 0xFA, 1},
	"mistyrose":            {0xFF, 0xE4, 0xE1, 1},
	"moccasin":             {0xFF, 0xE4, 0xB5, 1},
	"navajowhite":          {0xFF, 0xDE, 0xAD, 1},
	"navy":                 {0x00, 0x00, 0x80, 1},
	"oldlace":              {0xFD, 0xF5, 0xE6, 1},
	"olive":                {0x80, 0x80, 0x00, 1},
	"olivedrab":            {0x6B, 0x8E, 0x23, 1},
	"orange":               {0xFF, 0xA5, 0x00, 1},
	"orangered":            {0xFF, 0x45, 0x00, 1},
	"orchid":               {0xDA, 0x70, 0xD6, 1},
	"palegoldenrod":        {0xEE, 0xE8, 0xAA, 1},
	"palegreen":            {0x98, 0xFB, 0x98, 1},
	"paleturquoise":        {0xAF, 0xEE, 0xEE, 1},
	"palevioletred":        {0xDB, 0x70, 0x93, 1},
	"papayawhip":           {0xFF, 0xEF, 0xD5, 1},
	"peachpuff":            {0xFF, 0xDA, 0xB9, 1},
	"peru":                 {0xCD, 0x85, 0x3F, 1},
	"pink":                 {0xFF, 0xC0, 0xCB, 1},
	"plum":                 {0xDD, 0xA0, 0xDD, 1},
	"powderblue":           {0xB0, 0xE0, 0xE6, 1},
	"purple":               {0x80, 0x00, 0x80, 1},
	"red":                  {0xFF, 0x00, 0x00, 1},
	"rosybrown":            {0xBC, 0x8F, 0x8F, 1},
	"royalblue":            {0x41, 0x69, 0xE1, 1},
	"saddlebrown":          {0x8B, 0x45, 0x13, 1},
	"salmon":               {0xFA, 0x80, 0x72, 1},
	"sandybrown":           {0xF4, 0xA4, 0x60, 1},
	"seagreen":             {0x2E, 0x8B, 0x57, 1},
	"seashell":             {0xFF, 0xF5, 0xEE, 1},
	"sienna":               {0xA0, 0x52, 0x2D, 1},
	"silver":               {0xC0, 0xC0, 0xC0, 1},
	"skyblue":              {0x87, 0xCE, 0xEB, 1},
	"slateblue":            {0x6A, 0x5A, 0xCD, 1},
	"slategray":            {0x70, 0x80, 0x90, 1},
	"slategrey":            {0x70, 0x80, 0x90, 1},
	"snow":                 {0xFF, 0xFA, 0xFA, 1},
	"springgreen":          {0x00, 0xFF, 0x7F, 1},
	"steelblue":            {0x46, 0x82, 0xB4, 1},
	"tan":                  {0xD2, 0xB4, 0x8C, 1},
	"teal":                 {0x00, 0x80, 0x80, 1},
	"thistle":              {0xD8, 0xBF, 0xD8, 1},
	"tomato":               {0xFF, 0x63, 0x47, 1},
	"turquoise":            {0x40, 0xE0, 0xD0, 1},
	"violet":               {0xEE, 0x82, 0xEE, 1},
	"wheat":                {0xF5, 0xDE, 0xB3, 1},
	"white":                {0xFF, 0xFF, 0xFF, 1},
	"whitesmoke":           {0xF5, 0xF5, 0xF5, 1},
	"yellow":               {0xFF, 0xFF, 0x00, 1},
	"yellowgreen":          {0x9A, 0xCD, 0x32, 1},
}
