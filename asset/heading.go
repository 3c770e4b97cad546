package asset

// DefaultHeadingMarkup is the built-in heading, split into word groupings
const DefaultHeadingMarkup = `
<section class="magnifier-section" tabindex="0">
  <h1 id="main-heading">
    <span class="word" data-text="EXCELLENCE">EXCELLENCE</span>
    <span class="word" data-text="IN">IN</span>
    <span class="word" data-text="EVERY">EVERY</span>
    <span class="word" data-text="DETAIL">DETAIL</span>
  </h1>
  <div id="magnifierGlass"><div class="magnifier-content"></div></div>
</section>
`

// DefaultThemeStylesheet carries the palette as CSS custom properties
const DefaultThemeStylesheet = `
:root {
  --background: #0b0b12;
  --text: #8a8a9a;
  --highlight: #f4d98a;
  --gold-primary: #d4af37;
  --gold-secondary: #ffd700;
  --glow-sm: #6b5a1e;
  --glow-md: #a8861f;
  --lens-ring: #c9b26b;
  --lens-fill: #16141c;
}
`
