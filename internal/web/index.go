// Package web holds the embedded single-page UI.
package web

// IndexHTML is the whole front end: preset picker, duration slider, custom
// settings, inline preview and download link. It talks to /api/presets and
// /api/generate only.
var IndexHTML = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>healwave</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; background: #10141c; color: #e8e8e8; }
  h1 { font-weight: 600; }
  fieldset { border: 1px solid #2a3242; border-radius: 8px; margin: 1rem 0; padding: 1rem; }
  legend { padding: 0 .5rem; color: #9db2d0; }
  label { display: block; margin: .6rem 0 .2rem; }
  select, input { width: 100%; padding: .4rem; border-radius: 4px; border: 1px solid #2a3242; background: #1a2030; color: inherit; box-sizing: border-box; }
  input[type=range] { padding: 0; }
  button { margin-top: 1rem; padding: .6rem 1.4rem; border: 0; border-radius: 6px; background: #3b6ef5; color: #fff; font-size: 1rem; cursor: pointer; }
  button:disabled { opacity: .5; cursor: wait; }
  audio { width: 100%; margin-top: 1rem; }
  a.download { display: inline-block; margin-top: .6rem; color: #7fb2ff; }
  .error { color: #ff7a7a; margin-top: .8rem; }
  .hidden { display: none; }
</style>
</head>
<body>
<h1>healwave</h1>

<fieldset>
  <legend>Settings</legend>
  <label for="preset">Preset</label>
  <select id="preset"></select>
  <label for="duration">Duration (minutes): <span id="duration-label">15</span></label>
  <input type="range" id="duration" min="1" max="120" value="15">
</fieldset>

<fieldset id="custom" class="hidden">
  <legend>Custom Settings</legend>
  <label for="kind">Sound Type</label>
  <select id="kind">
    <option value="binaural">Binaural</option>
    <option value="isochronic">Isochronic</option>
    <option value="choir">Choir</option>
  </select>
  <label for="base">Base Frequency (Hz)</label>
  <input type="number" id="base" value="432" min="1" step="1">
  <label for="secondary" id="secondary-label">Delta Frequency (Hz)</label>
  <input type="number" id="secondary" value="7" min="0.1" step="0.1">
</fieldset>

<button id="generate">Generate Audio</button>
<div id="error" class="error hidden"></div>
<audio id="player" controls class="hidden"></audio>
<a id="download" class="download hidden">Download WAV File</a>

<script>
const presetSel = document.getElementById('preset');
const durationInput = document.getElementById('duration');
const durationLabel = document.getElementById('duration-label');
const customBox = document.getElementById('custom');
const kindSel = document.getElementById('kind');
const secondaryInput = document.getElementById('secondary');
const secondaryLabel = document.getElementById('secondary-label');
const generateBtn = document.getElementById('generate');
const errorBox = document.getElementById('error');
const player = document.getElementById('player');
const download = document.getElementById('download');
let customName = 'Custom Configuration';

fetch('/api/presets').then(r => r.json()).then(info => {
  customName = info.custom;
  durationInput.max = info.max_duration_minutes;
  for (const p of info.presets) {
    const opt = document.createElement('option');
    opt.value = p.name;
    opt.textContent = p.name;
    presetSel.appendChild(opt);
  }
  presetSel.onchange();
});

durationInput.oninput = () => { durationLabel.textContent = durationInput.value; };
presetSel.onchange = () => {
  customBox.classList.toggle('hidden', presetSel.value !== customName);
};
kindSel.onchange = () => {
  const k = kindSel.value;
  secondaryLabel.classList.toggle('hidden', k === 'choir');
  secondaryInput.classList.toggle('hidden', k === 'choir');
  secondaryLabel.textContent = k === 'binaural' ? 'Delta Frequency (Hz)' : 'Beat Frequency (Hz)';
};

generateBtn.onclick = async () => {
  errorBox.classList.add('hidden');
  generateBtn.disabled = true;
  try {
    const body = { preset: presetSel.value, duration_minutes: Number(durationInput.value) };
    if (presetSel.value === customName) {
      body.custom = {
        kind: kindSel.value,
        base: Number(document.getElementById('base').value),
        secondary: Number(secondaryInput.value),
      };
    }
    const resp = await fetch('/api/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(body),
    });
    if (!resp.ok) {
      const err = await resp.json().catch(() => ({ error: resp.statusText }));
      throw new Error(err.error || 'generation failed');
    }
    const blob = await resp.blob();
    const url = URL.createObjectURL(blob);
    player.src = url;
    player.classList.remove('hidden');
    download.href = url;
    download.download = 'healing_' + presetSel.value.replaceAll(' ', '_') + '.wav';
    download.classList.remove('hidden');
  } catch (e) {
    errorBox.textContent = e.message;
    errorBox.classList.remove('hidden');
  } finally {
    generateBtn.disabled = false;
  }
};
</script>
</body>
</html>
`)
