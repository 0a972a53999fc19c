package server

import "html/template"

// The page mirrors the classic single-page calculator: a vehicle/location
// form on top, the ranked results table below. Row classes match
// ranking.Highlight values.
var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Gas Station Cost Calculator</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .container { max-width: 1200px; margin: 0 auto; }
        .form-group { margin-bottom: 15px; }
        .error { color: #b00020; margin-top: 10px; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th, td { padding: 10px; border: 1px solid #ddd; text-align: left; font-size: 0.9em; }
        th { background-color: #f5f5f5; }
        .best-total { background-color: #e6ffe6; }
        .best-car { background-color: #fff3e6; }
        .best-cans { background-color: #e6f3ff; }
        .legend { margin-top: 10px; font-size: 0.9em; }
        .legend-item { margin-right: 20px; display: inline-block; padding: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Gas Station Cost Calculator</h1>
        <form method="POST">
            <div class="form-group">
                <label for="vehicle">Select Vehicle:</label>
                <select name="vehicle" id="vehicle" required>
                    {{range .Vehicles}}<option value="{{.Key}}">{{.Label}}</option>
                    {{end}}</select>
            </div>
            <div class="form-group">
                <label>Choose Location:</label>
                <div>
                    <input type="radio" id="use_browser_location" name="location_choice" value="browser" checked>
                    <label for="use_browser_location">Use Browser Location</label>
                </div>
                <div>
                    <input type="radio" id="use_address_manual" name="location_choice" value="manual">
                    <label for="use_address_manual">Enter Address Manually</label>
                </div>
            </div>
            <div class="form-group" id="manual_address_input" style="display: none;">
                <label for="manual_address">Enter Address:</label>
                <input type="text" id="manual_address" name="manual_address">
            </div>
            <div class="form-group" id="coords_field">
                <label for="coords">Your Location (Auto-Fill, if browser location is selected):</label>
                <input type="text" id="coords" name="coords" readonly>
            </div>
            <button type="submit">Find Best Gas Prices</button>
        </form>
        {{if .Error}}
        <p class="error">{{.Error}}</p>
        {{end}}
        {{if .Results}}
        <div class="legend">
            <span class="legend-item best-total">Best Combined Total</span>
            <span class="legend-item best-car">Best for Car Only</span>
            <span class="legend-item best-cans">Best for Gas Cans Only</span>
        </div>
        <table>
            <tr>
                <th>Station</th>
                <th>Gas Price</th>
                <th>Distance (miles)</th>
                <th>Travel Cost (round trip)</th>
                <th>Car Fill Cost</th>
                <th>Gas Cans Cost</th>
                <th>Combined Travel and Fill Cost</th>
                <th>Total Cost</th>
            </tr>
            {{range .Results}}
            <tr class="{{.Highlight}}">
                <td>{{.Station}}</td>
                <td>${{printf "%.2f" .GasPrice}}</td>
                <td>{{printf "%.1f" .DistanceMiles}}</td>
                <td>${{printf "%.2f" .TravelCost}}</td>
                <td>${{printf "%.2f" .CarFillCost}}</td>
                <td>${{printf "%.2f" .CansFillCost}}</td>
                <td>${{printf "%.2f" .CombinedFillCost}}</td>
                <td>${{printf "%.2f" .TotalCost}}</td>
            </tr>
            {{end}}
        </table>
        {{end}}
    </div>
    <script>
        document.addEventListener('DOMContentLoaded', function () {
            const browserLocationRadio = document.getElementById('use_browser_location');
            const manualAddressRadio = document.getElementById('use_address_manual');
            const manualAddressInput = document.getElementById('manual_address_input');
            const coordsField = document.getElementById('coords_field');

            browserLocationRadio.addEventListener('change', function () {
                if (browserLocationRadio.checked) {
                    manualAddressInput.style.display = 'none';
                    coordsField.style.display = 'block';
                    if (navigator.geolocation) {
                        navigator.geolocation.getCurrentPosition(function (position) {
                            document.getElementById('coords').value = position.coords.latitude + ',' + position.coords.longitude;
                        });
                    } else {
                        alert("Geolocation is not supported by your browser.");
                    }
                }
            });

            manualAddressRadio.addEventListener('change', function () {
                if (manualAddressRadio.checked) {
                    manualAddressInput.style.display = 'block';
                    coordsField.style.display = 'none';
                    document.getElementById('coords').value = '';
                }
            });

            if (navigator.geolocation && browserLocationRadio.checked) {
                navigator.geolocation.getCurrentPosition(function (position) {
                    document.getElementById('coords').value = position.coords.latitude + ',' + position.coords.longitude;
                });
            }
        });
    </script>
</body>
</html>
`))
