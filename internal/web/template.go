package web

const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Academic hours calculator</title>
  {{if .ShareDescription}}
  <meta name="description" content="{{.ShareDescription}}">
  <meta property="og:description" content="{{.ShareDescription}}">
  {{end}}
  <style>
    body { font-family: system-ui, sans-serif; margin: 0 auto; padding: 24px; max-width: 1040px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    header { text-align: center; margin-bottom: 28px; }
    header h1 { margin: 0 0 8px 0; font-weight: 700; }
    header p { color: #555; max-width: 640px; margin: 0 auto; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .ok { color: #1b5e20; margin: 12px 0; padding: 10px; background: #e8f5e9; border-radius: 6px; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; margin-bottom: 24px; }
    @media (max-width: 720px) { .grid { grid-template-columns: 1fr; } }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; background: #fafafa; }
    .card h2 { margin: 0 0 6px 0; font-size: 1.25em; font-weight: 600; }
    .hint { color: #666; font-size: 0.9em; margin-top: 4px; }
    .modes { display: flex; gap: 16px; margin-bottom: 14px; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-weight: 500; color: #333; margin-bottom: 4px; font-size: 0.95em; }
    .field input[type="number"], .field input[type="text"], .field input[type="email"], .field textarea { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; width: 100%; }
    .fields-row { display: flex; gap: 16px; }
    .fields-row .field { flex: 1; }
    .groups { display: grid; grid-template-columns: 1fr 1fr; gap: 8px; }
    .groups label { border: 1px solid #ccc; border-radius: 8px; padding: 8px; text-align: center; cursor: pointer; background: #fff; }
    .groups input { display: none; }
    .groups input:checked + span { font-weight: 700; color: #1976d2; }
    .result { text-align: center; padding: 16px; border: 2px solid #bbdefb; border-radius: 12px; background: #fff; margin-top: 12px; }
    .result .big { font-size: 2.6em; font-weight: 700; color: #1976d2; }
    .result .formula { color: #666; font-size: 0.9em; margin-top: 8px; }
    .level { margin-top: 12px; padding: 10px; border-radius: 8px; border: 2px solid #ce93d8; background: #f3e5f5; }
    .tier-1 { border-color: #90caf9; background: #e3f2fd; }
    .tier-2 { border-color: #a5d6a7; background: #e8f5e9; }
    .tier-3 { border-color: #ce93d8; background: #f3e5f5; }
    .tier-4 { border-color: #ffcc80; background: #fff3e0; }
    .tier-5 { border-color: #ef9a9a; background: #ffebee; }
    .level-list .level { margin-top: 8px; }
    .tag { display: inline-block; background: #e3f2fd; color: #1976d2; padding: 2px 10px; border-radius: 12px; font-size: 0.85em; margin: 2px; }
    details { border-top: 1px solid #eee; padding: 8px 0; }
    summary { cursor: pointer; font-weight: 600; }
    button[type="submit"] { padding: 10px 20px; font-size: 1em; font-weight: 500; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button[type="submit"]:hover { background: #1565c0; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }
  </style>
</head>
<body>
  <header>
    <h1>⏰ Academic hours calculator</h1>
    <p>Convert between regular time and academic hours for supplementary education programs, for children from 1.5 to 18 years old.</p>
  </header>

  <div class="grid">
    <div class="card">
      <form method="POST" action="/calc">
        <div class="modes">
          <label><input type="radio" name="mode" value="to-academic" {{if eq .Mode "to-academic"}}checked{{end}}> Regular → Academic</label>
          <label><input type="radio" name="mode" value="to-regular" {{if eq .Mode "to-regular"}}checked{{end}}> Academic → Regular</label>
        </div>

        <div class="fields-row">
          <div class="field">
            <label for="hours">Hours</label>
            <input id="hours" name="hours" type="number" min="0" step="1" value="{{.Hours}}">
          </div>
          <div class="field">
            <label for="minutes">Minutes</label>
            <input id="minutes" name="minutes" type="number" min="0" max="59" step="1" value="{{.Minutes}}">
          </div>
        </div>
        <div class="field">
          <label for="academic">Academic hours</label>
          <input id="academic" name="academic" type="number" min="0" step="0.1" value="{{.Academic}}">
          <div class="hint">Hours and minutes are used for Regular → Academic, academic hours for the reverse.</div>
        </div>

        <div class="field">
          <label>Age group</label>
          <div class="groups">
            {{range .Groups}}
            <label><input type="radio" name="group" value="{{.Index}}" {{if .Selected}}checked{{end}}><span>{{.Group.Icon}} {{.Group.Label}}</span></label>
            {{end}}
          </div>
        </div>

        <button type="submit">Calculate</button>
      </form>

      {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

      {{with .Result}}
      <div class="result">
        <div class="hint">Result:</div>
        {{if eq .Mode "to-regular"}}
          <div class="big">{{.RegularText}}</div>
          <div>of regular time</div>
        {{else}}
          <div class="big">{{.AcademicText}}</div>
          <div>academic hours</div>
        {{end}}
        <div class="formula">{{.Group.Icon}} {{.Formula}}</div>
        {{with .Level}}
        <div class="level tier-{{.Tier}}">
          <div>{{.Icon}} <b>{{.Name}}</b></div>
          <div class="hint">{{.Range}}</div>
          <div>{{.Description}}</div>
        </div>
        {{end}}
      </div>
      {{end}}
    </div>

    <div>
      <div class="card">
        <h2>{{.Selected.Icon}} {{.Selected.Label}}</h2>
        <div class="hint">Academic hour: {{.Selected.UnitMinutes}} minutes</div>
        <p>{{.Selected.Description}}</p>
        <div>{{range .Selected.Features}}<div>✓ {{.}}</div>{{end}}</div>
      </div>
      <div class="card" style="margin-top: 24px;">
        <h2>ℹ️ What is an academic hour?</h2>
        <p>In supplementary education an academic hour is a unit of study time adapted to the age of the children.
        For the youngest it is a short period of focused attention in clubs and studios; for older children it is a full session in sections and education centers.</p>
      </div>
    </div>
  </div>

  <div class="grid">
    <div class="card">
      <h2>📖 Age groups</h2>
      {{range .Groups}}
      <details>
        <summary>{{.Group.Icon}} {{.Group.Label}} <span class="hint">academic hour: {{.Group.UnitMinutes}} minutes</span></summary>
        <p>{{.Group.Description}}</p>
        <div>{{range .Group.Features}}<span class="tag">{{.}}</span>{{end}}</div>
      </details>
      {{end}}
    </div>

    <div class="card level-list">
      <h2>🎓 Program levels</h2>
      <div class="hint">Classification by academic-hour volume</div>
      {{range .Levels}}
      <div class="level tier-{{.Tier}}">
        <div>{{.Icon}} <b>{{.Name}}</b> <span class="hint">{{.Range}}</span></div>
        <div>{{.Description}}</div>
      </div>
      {{end}}
    </div>
  </div>

  <div class="card">
    <h2>💬 Contact us</h2>
    <div class="hint">Questions? Write to us and we will be glad to help.</div>
    {{with .Ack}}<div class="ok"><b>{{.Title}}</b> {{.Description}}</div>{{end}}
    {{if .ContactError}}<div class="err">{{.ContactError}}</div>{{end}}
    <form method="POST" action="/contact">
      <div class="field">
        <label for="name">Name</label>
        <input id="name" name="name" type="text" value="{{.ContactName}}" placeholder="Your name" required>
      </div>
      <div class="field">
        <label for="email">Email</label>
        <input id="email" name="email" type="email" value="{{.ContactEmail}}" placeholder="your@email.com" required>
      </div>
      <div class="field">
        <label for="message">Message</label>
        <textarea id="message" name="message" rows="4" placeholder="Tell us how we can help..." required>{{.ContactBody}}</textarea>
      </div>
      <button type="submit">Send message</button>
    </form>
  </div>

  <footer>Academic hours calculator v{{.Version}} · for supplementary education teachers and parents</footer>
</body>
</html>`
