package surface

// ControlStyleCSS is the shared stylesheet for every control. It also keeps
// the page at the visible viewport height on iOS and stops pinch zoom.
const ControlStyleCSS = `
.mobileControl, .mobileControl:active, .mobileControl.active {
    position: absolute;
    width: 10vh;
    height: 10vh;
    font-size: 4vh;
    -webkit-user-select: none;
    -ms-user-select: none;
    user-select: none;
    line-height: 10vh;
    padding: 0px;
    color: #ffffff;
    text-align: center;
    text-shadow: 0.35vh 0.35vh #000000;
    background-color: rgba(0, 0, 0, 0.25);
    box-sizing: content-box;
    outline: none;
    box-shadow: none;
    border: 0.3vh solid rgba(255, 255, 255, 0.35);
    border-radius: 1vh;
}
.mobileControl:active, .mobileControl.active {
    background-color: rgba(255, 255, 255, 0.35);
}
html, body {
    height: -webkit-fill-available !important;
    touch-action: pan-x pan-y;
}
.hide {
    display: none;
}
`

// HideClass hides an element through the control stylesheet.
const HideClass = "hide"

// ActiveClass marks a pressed or latched control.
const ActiveClass = "active"
